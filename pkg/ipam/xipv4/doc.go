// Package xipv4 提供 IPv4 网络（CIDR）算术引擎。
//
// xipv4 围绕不可变值类型 [Net]（规范化基址 + 前缀掩码 [Netmask]）构建，
// 实现 IP 地址管理所需的全部数值推理：包含关系、全序排序、相邻块运算、
// 子网划分、兄弟块汇总，以及以候选子网为骨架重建完整划分的缺口填充。
// 地址一律使用 [net/netip.Addr]，并通过 [Net.Prefix]、[Net.Range] 与
// [NetList.IPSet] 和 [go4.org/netipx] 互通。
//
// # 核心功能
//
//   - netmask.go: 前缀掩码值类型 [Netmask]，前缀/斜线/点分三种文本格式
//   - net.go: 网络实体 [Net] 的构造、解析、格式化与 netip/netipx 桥接
//   - rel.go: 全序比较 [Net.Compare] 与四值包含关系 [Net.Rel]
//   - sibling.go: 兄弟块定位 [Net.NextSib]/[Net.PrevSib]、最大化拓宽
//     [Net.Grow] 及其组合 [Net.Next]/[Net.Prev]
//   - subnet.go: 子网计数 [Net.SubnetCount]、索引 [Net.NthSubnet]、
//     重掩码 [Net.Resize] 与兄弟对合并 [Net.Summarize]
//   - fill.go: 列表工具 [NetList] 与缺口填充 [Net.Fill]
//   - marshal.go: [Net] 与 [Netmask] 的文本序列化
//
// # 快速示例
//
// 解析并划分子网：
//
//	n := xipv4.MustParse("192.168.1.0/24")
//	fmt.Println(n.SubnetCount(26))        // 4
//	sub, _ := n.NthSubnet(26, 2)
//	fmt.Println(sub)                      // 192.168.1.128/26
//
// 判断包含关系：
//
//	a := xipv4.MustParse("10.0.0.0/30")
//	b := xipv4.MustParse("10.0.0.0/24")
//	fmt.Println(a.Rel(b))                 // subnet
//
// 缺口填充，重建完整划分：
//
//	parent := xipv4.MustParse("10.0.0.0/24")
//	parts := parent.Fill(xipv4.NetList{xipv4.MustParse("10.0.0.64/26")})
//	// 10.0.0.0/26 10.0.0.64/26 10.0.0.128/25
//
// # 设计决策
//
//   - [Net] 与 [Netmask] 是不可变值类型：构造即规范化（基址按掩码归零），
//     所有运算返回新值，无共享可变状态，任意并发调用无需同步
//   - "无结果"一律以 (value, bool) 显式返回：地址空间尽头没有相邻块、
//     两网络互不包含、不可划分、不可合并都是可预期的正常结果，不是错误
//   - [Net.Rel] 的四值结果与 [Net.Compare] 的三值排序是不同类型，
//     不能互相替代：前者回答包含，后者回答先后
//   - 错误仅两类来源：文本解析失败与前缀长度越界，预定义错误变量
//     支持 errors.Is 分流
//   - [Netmask.Len] 对 /0 返回 0 哨兵（"无界"而非"为空"），
//     相应地 /0 网络的 [Net.Nth] 恒为 false，[Net.SubnetCount] 对
//     划分出 2^32 块的请求返回 0
//
// # 填充语义
//
// [Net.Fill] 保证结果是本网络的无重叠完整划分：候选中真属于本网络的
// 子网原样出现，其余地址由最大的合成块补齐。但空候选列表（或候选全部
// 与本网络无关）返回空结果，而不是覆盖整个网络的单块——依赖方的默认
// 覆盖行为建立在这一不对称语义上，属于刻意保留。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xipv4.Parse("10.0.0.0/33")
//	if errors.Is(err, xipv4.ErrInvalidPrefixLen) {
//	    // 前缀长度越界
//	}
package xipv4
