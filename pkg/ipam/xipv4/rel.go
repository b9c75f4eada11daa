package xipv4

// Compare 在全序下比较两个网络：先按基址数值，相同时按掩码容量作为
// 决胜（见 [Netmask.Compare]）——同一基址下，较小的网络排在较大的网络之前。
// 返回 -1/0/1。
func (n Net) Compare(other Net) int {
	switch {
	case n.base < other.base:
		return -1
	case n.base > other.base:
		return 1
	}
	return n.mask.Compare(other.mask)
}

// Relation 表示两个网络之间的包含关系，四种结果之一。
//
// Relation 与 [Net.Compare] 是不同的概念，不能混用：
// Relation 回答"谁包含谁"，Compare 回答"谁排在前面"。
// 调用方必须先排除 [RelationNone]，再将结果当作有序结论使用。
type Relation int8

const (
	// RelationNone 表示两个网络互不包含。
	RelationNone Relation = iota
	// RelationSubnet 表示接收者是对方的子网。
	RelationSubnet
	// RelationEqual 表示两个网络完全相同。
	RelationEqual
	// RelationSupernet 表示接收者是对方的超网。
	RelationSupernet
)

// String 返回关系的字符串表示。
func (r Relation) String() string {
	switch r {
	case RelationSubnet:
		return "subnet"
	case RelationEqual:
		return "equal"
	case RelationSupernet:
		return "supernet"
	default:
		return "none"
	}
}

// Rel 判定接收者与 other 的包含关系。
//
// 基址相同时由掩码容量决定：掩码更大（网络更宽）的一方是超网。
// 基址不同时做主机掩码覆盖测试：若对方基址落在本网络的地址范围内，
// 本网络是超网；对称测试判定子网；两者都不成立则互不包含。
func (n Net) Rel(other Net) Relation {
	if n.base == other.base {
		switch n.mask.Compare(other.mask) {
		case 1:
			return RelationSupernet
		case -1:
			return RelationSubnet
		}
		return RelationEqual
	}
	if host := n.mask.HostMask(); n.base|host == other.base|host {
		return RelationSupernet
	}
	if host := other.mask.HostMask(); n.base|host == other.base|host {
		return RelationSubnet
	}
	return RelationNone
}
