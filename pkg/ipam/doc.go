// Package ipam 提供 IP 地址管理（IPAM）相关的子包。
//
// 子包列表：
//   - xipv4: IPv4 网络（CIDR）算术引擎，包含包含关系判定、兄弟块运算、
//     子网划分、汇总合并与缺口填充
//
// 设计原则：
//   - 不可变值类型，纯函数运算，天然并发安全
//   - 基于 net/netip 与 go4.org/netipx，与生态类型互通
//   - 所有"无结果"情形以 (value, bool) 显式返回，而非错误
package ipam
