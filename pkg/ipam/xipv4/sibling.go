package xipv4

// nthSib 返回位移坐标下偏移 nth 的兄弟网络（前缀长度不变）。
// 网络在自身块大小为单位的坐标系中有整数下标 index = base >> (32-prefix)；
// backward 为真时向低地址方向移动。下标下溢（低于 0）或还原后的地址
// 超过 255.255.255.255 时返回 false。
func (n Net) nthSib(nth uint32, backward bool) (Net, bool) {
	shift := 32 - uint(n.mask.prefix)
	idx := uint64(n.base) >> shift
	if backward {
		if idx < uint64(nth) {
			return Net{}, false
		}
		idx -= uint64(nth)
	} else {
		idx += uint64(nth)
	}
	addr := idx << shift
	if addr > uint64(allOnes) {
		return Net{}, false
	}
	return Net{base: uint32(addr), mask: n.mask}, true
}

// NextSib 返回同前缀长度下紧邻的下一个兄弟网络。
// 已是地址空间最后一个块时返回 false。
func (n Net) NextSib() (Net, bool) {
	return n.nthSib(1, false)
}

// PrevSib 返回同前缀长度下紧邻的上一个兄弟网络。
// 基址已是 0.0.0.0 时返回 false。
func (n Net) PrevSib() (Net, bool) {
	return n.nthSib(1, true)
}

// Grow 在不吸收任何主机位 1 比特的前提下尽可能拓宽网络（减小前缀长度），
// 即找到最小的前缀长度 p' <= p，使基址仍是 /p' 的规范基址。
// 基址为 0.0.0.0 时一路拓宽到 /0。
func (n Net) Grow() Net {
	mask := n.mask.Mask()
	prefix := n.mask.prefix
	for prefix > 0 {
		wider := mask << 1
		if n.base|wider != wider {
			break
		}
		mask = wider
		prefix--
	}
	return Net{base: n.base, mask: Netmask{prefix: prefix}}
}

// Next 前进到当前前缀长度下紧邻的下一个块，再对该块做最大化拓宽。
// 越过 255.255.255.255 时返回 false。
func (n Net) Next() (Net, bool) {
	sib, ok := n.NextSib()
	if !ok {
		return Net{}, false
	}
	return sib.Grow(), true
}

// Prev 先对本网络做最大化拓宽，再取拓宽后的上一个兄弟块。
// 低于 0.0.0.0 时返回 false。
func (n Net) Prev() (Net, bool) {
	return n.Grow().PrevSib()
}
