package xipv4

// MarshalText 实现 [encoding.TextMarshaler]，输出与 [Net.String]
// 相同的 CIDR 文本。借此 Net 可直接用于 JSON/YAML/BSON 字段。
func (n Net) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，
// 接受 [Parse] 支持的所有格式。
func (n *Net) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出与 [Netmask.String]
// 相同的 "/24" 形式文本。
func (m Netmask) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，
// 接受 [ParseNetmask] 支持的所有格式。
func (m *Netmask) UnmarshalText(text []byte) error {
	parsed, err := ParseNetmask(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
