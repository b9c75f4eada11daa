package xipv4

// SubnetCount 返回本网络可划分出的 /prefix 子网数量。
// 以下情形返回 0（非错误）：prefix 不大于当前前缀长度、prefix 超过 32、
// 或二者之差达到 32（计数在 32 位内溢出）。
// 0 表示"不可划分"，调用方不得将其理解为"划分出零个"。
func (n Net) SubnetCount(prefix int) uint32 {
	p := n.mask.PrefixLen()
	if prefix <= p || prefix > 32 || prefix-p >= 32 {
		return 0
	}
	return uint32(1) << (prefix - p)
}

// NthSubnet 返回本网络第 index 个（0 起）/prefix 子网。
// index 超出 [SubnetCount] 或不可划分时返回 false。
// 实现为：取本网络的首个 /prefix 子网，再前进 index 个兄弟块。
func (n Net) NthSubnet(prefix int, index uint32) (Net, bool) {
	count := n.SubnetCount(prefix)
	if count == 0 || index >= count {
		return Net{}, false
	}
	first := Net{base: n.base, mask: Netmask{prefix: uint8(prefix)}}
	return first.nthSib(index, false)
}

// Resize 将基址按 prefix 重新掩码，返回新网络。
// prefix 超出 [0,32] 时返回 [ErrInvalidPrefixLen]。
func (n Net) Resize(prefix int) (Net, error) {
	m, err := NetmaskFromPrefix(prefix)
	if err != nil {
		return Net{}, err
	}
	return NewFromUint32(n.base, m), nil
}

// Summarize 尝试将两个等前缀长度的网络合并为共同的父块（前缀长度减一）。
// 仅当二者恰为同一父块的两半（顺序不限）时成功；前缀长度不同、
// 不在同一父块内、或前缀长度为 0 时返回 false。
// 只合并精确的兄弟对，不做跨列表的传递性合并（见 [NetList.Summ]）。
func (n Net) Summarize(other Net) (Net, bool) {
	p := n.mask.prefix
	if p == 0 || p != other.mask.prefix {
		return Net{}, false
	}
	shift := 32 - uint(p) + 1
	if uint64(n.base)>>shift != uint64(other.base)>>shift {
		return Net{}, false
	}
	merged, _ := n.Resize(int(p) - 1)
	return merged, true
}
