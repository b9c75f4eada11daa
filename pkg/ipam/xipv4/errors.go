package xipv4

import "errors"

var (
	// ErrInvalidAddress 表示无效或非 IPv4 的地址。
	ErrInvalidAddress = errors.New("xipv4: invalid IPv4 address")

	// ErrInvalidNetmask 表示无效的掩码文本。
	ErrInvalidNetmask = errors.New("xipv4: invalid netmask")

	// ErrInvalidPrefixLen 表示前缀长度超出 [0,32]。
	ErrInvalidPrefixLen = errors.New("xipv4: prefix length out of range [0,32]")

	// ErrInvalidNet 表示无效的 IPv4 网络。
	ErrInvalidNet = errors.New("xipv4: invalid IPv4 network")
)
