package xipv4

import (
	"fmt"
	"slices"

	"go4.org/netipx"
)

// NetList 是一组网络，提供排序、冗余剔除、汇总与集合桥接。
// 所有方法均返回新列表，原列表不变。
type NetList []Net

// Sort 返回按 [Net.Compare] 全序升序排列的副本。排序是稳定的。
func (l NetList) Sort() NetList {
	sorted := slices.Clone(l)
	slices.SortStableFunc(sorted, Net.Compare)
	return sorted
}

// DiscardSubnets 剔除被列表中其他成员真包含的网络，仅保留极大独立块。
// 相同条目保留首个出现者。保持原有相对顺序。
func (l NetList) DiscardSubnets() NetList {
	kept := make(NetList, 0, len(l))
	for i, n := range l {
		discard := false
		for j, other := range l {
			if i == j {
				continue
			}
			if rel := other.Rel(n); rel == RelationSupernet || (rel == RelationEqual && j < i) {
				discard = true
				break
			}
		}
		if !discard {
			kept = append(kept, n)
		}
	}
	return kept
}

// Summ 将列表汇总为最小的无冗余覆盖集：先剔除子网并排序，
// 然后反复把相邻的精确兄弟对合并为父块，直至不动点。
// 覆盖的地址集合不变，块数最少。
func (l NetList) Summ() NetList {
	nets := l.DiscardSubnets().Sort()
	for {
		var out NetList
		merged := false
		for i := 0; i < len(nets); i++ {
			if i+1 < len(nets) {
				if parent, ok := nets[i].Summarize(nets[i+1]); ok {
					out = append(out, parent)
					i++
					merged = true
					continue
				}
			}
			out = append(out, nets[i])
		}
		if !merged {
			return out
		}
		nets = out
	}
}

// IPSet 将列表构建为 [*netipx.IPSet]，自动合并重叠与相邻的范围。
// 空列表返回空的 IPSet（非 nil）。
func (l NetList) IPSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, n := range l {
		b.AddPrefix(n.Prefix())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}

// Fill 以 list 中的候选子网为骨架，重建本网络的完整无重叠划分：
// 候选中真属于本网络的子网原样保留，所有未覆盖的缺口用最大的合成
// 填充块补齐，结果按地址升序排列。
//
// 候选按序经过三重筛选：先对完整输入剔除被其他候选真包含的冗余条目，
// 再剔除与本网络无关、相等或更宽的条目，然后排序。筛选顺序有可观察
// 的后果：输入中混入本网络的相等项或超网时，真候选先在去冗余阶段被
// 其吞并，该项自身再被子网筛选剔除，结果为空。
//
// 空列表或候选全部无关时返回空结果——不会合成覆盖整个网络的单块，
// 该不对称行为是刻意保留的既有语义。
func (n Net) Fill(list NetList) NetList {
	var subs NetList
	for _, e := range list.DiscardSubnets() {
		if n.Rel(e) == RelationSupernet {
			subs = append(subs, e)
		}
	}
	if len(subs) == 0 {
		return nil
	}
	subs = subs.Sort()

	var filled NetList
	if subs[0].base != n.base {
		filled = subs[0].backfill(n.base)
	}

	// 尾部填充的上限（开区间上界）：本网络同前缀长度下一个兄弟块的基址；
	// 本网络已是地址空间最后一个块时为地址空间上界再加一。
	ceil := uint64(allOnes) + 1
	if sib, ok := n.NextSib(); ok {
		ceil = uint64(sib.base)
	}
	for i, sub := range subs {
		filled = append(filled, sub)
		limit := ceil
		if i+1 < len(subs) {
			limit = uint64(subs[i+1].base)
		}
		filled = append(filled, sub.fwdFill(limit)...)
	}
	return filled
}

// backfill 自当前块沿 Prev 链向低地址方向合成填充块，
// 收集基址不低于 limit 的块，按升序返回。
func (n Net) backfill(limit uint32) NetList {
	var nets NetList
	cur := n
	for {
		prev, ok := cur.Prev()
		if !ok || prev.base < limit {
			break
		}
		nets = append(NetList{prev}, nets...)
		cur = prev
	}
	return nets
}

// fwdFill 自当前块沿 Next 链向高地址方向合成填充块，
// 基址到达 limit（开区间上界）即停止。拓宽出的块不得越过 limit：
// 越界时收窄到恰好容纳的最大块，保证结果互不重叠。
func (n Net) fwdFill(limit uint64) NetList {
	var nets NetList
	cur := n
	for {
		next, ok := cur.Next()
		if !ok || uint64(next.base) >= limit {
			break
		}
		next = next.shrinkBelow(limit)
		nets = append(nets, next)
		cur = next
	}
	return nets
}

// shrinkBelow 在保持基址不变的前提下收窄网络，直到整个块落在
// 开区间上界 limit 之内。要求 base < limit。
func (n Net) shrinkBelow(limit uint64) Net {
	out := n
	for out.mask.prefix < 32 {
		end := uint64(out.base) + uint64(1)<<(32-out.mask.prefix)
		if end <= limit {
			break
		}
		out = Net{base: out.base, mask: Netmask{prefix: out.mask.prefix + 1}}
	}
	return out
}
