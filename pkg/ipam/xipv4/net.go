package xipv4

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// Net 表示一个 IPv4 网络：规范化的网络基址加前缀掩码。
// 构造时恒执行 base = raw AND mask，实体永远不携带主机位。
// 不可变值类型：所有"修改"操作均返回新值，可安全并发使用、可作 map key。
// 零值等价于 0.0.0.0/0。
type Net struct {
	base uint32
	mask Netmask
}

// New 从地址与掩码构造网络，基址自动按掩码规范化。
// addr 必须是 IPv4（IPv4-mapped IPv6 先去映射）；否则返回 [ErrInvalidAddress]。
func New(addr netip.Addr, mask Netmask) (Net, error) {
	v, ok := AddrToUint32(addr)
	if !ok {
		return Net{}, fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
	}
	return NewFromUint32(v, mask), nil
}

// NewFromUint32 从 uint32 地址与掩码构造网络，基址自动按掩码规范化。
// 此构造不会失败。
func NewFromUint32(addr uint32, mask Netmask) Net {
	return Net{base: addr & mask.Mask(), mask: mask}
}

// Parse 解析 IPv4 网络文本。支持四种格式：
//   - CIDR: "10.0.0.0/24"
//   - 点分掩码（斜线）: "10.0.0.0/255.255.255.0"
//   - 扩展格式（空格）: "10.0.0.0 255.255.255.0"
//   - 裸地址: "10.0.0.1"（隐含 /32）
//
// 先按 '/' 拆分，再按空格拆分，否则整体视为地址。
// 输入会自动去除首尾空白字符。
func Parse(s string) (Net, error) {
	s = strings.TrimSpace(s)
	var addrStr, maskStr string
	var hasMask bool
	switch {
	case strings.Contains(s, "/"):
		addrStr, maskStr, hasMask = strings.Cut(s, "/")
	case strings.Contains(s, " "):
		addrStr, maskStr, hasMask = strings.Cut(s, " ")
	default:
		addrStr = s
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(addrStr))
	if err != nil {
		return Net{}, fmt.Errorf("%w: %q", ErrInvalidAddress, addrStr)
	}
	mask := Netmask{prefix: 32}
	if hasMask {
		mask, err = ParseNetmask(maskStr)
		if err != nil {
			return Net{}, err
		}
	}
	return New(addr, mask)
}

// MustParse 与 [Parse] 相同，但解析失败时 panic。
// 仅用于测试与示例中的字面量。
func MustParse(s string) Net {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromPrefix 从 [netip.Prefix] 构造网络，主机位会被掩掉。
// IPv4-mapped IPv6 前缀（bits >= 96）转换为等价的纯 IPv4 网络；
// 其余非 IPv4 前缀返回 [ErrInvalidAddress]，无效前缀返回 [ErrInvalidNet]。
func FromPrefix(p netip.Prefix) (Net, error) {
	if !p.IsValid() {
		return Net{}, fmt.Errorf("%w: invalid prefix", ErrInvalidNet)
	}
	v, ok := AddrToUint32(p.Addr())
	if !ok {
		return Net{}, fmt.Errorf("%w: %s", ErrInvalidAddress, p.Addr())
	}
	prefix := p.Bits()
	if p.Addr().Is4In6() {
		if prefix < 96 {
			return Net{}, fmt.Errorf("%w: IPv4-mapped prefix %s is wider than /96", ErrInvalidNet, p)
		}
		prefix -= 96
	}
	mask, err := NetmaskFromPrefix(prefix)
	if err != nil {
		return Net{}, err
	}
	return NewFromUint32(v, mask), nil
}

// Network 返回规范化的网络基址。
func (n Net) Network() netip.Addr {
	return AddrFromUint32(n.base)
}

// Netmask 返回网络掩码。
func (n Net) Netmask() Netmask {
	return n.mask
}

// Broadcast 返回广播地址（基址与主机掩码按位或）。
func (n Net) Broadcast() netip.Addr {
	return AddrFromUint32(n.base | n.mask.HostMask())
}

// Len 返回网络包含的地址数量；/0 返回 0 哨兵值（见 [Netmask.Len]）。
func (n Net) Len() uint64 {
	return n.mask.Len()
}

// Nth 返回网络内第 index 个地址（0 起）。
// index >= Len() 时返回 false；由于 /0 的 Len 哨兵为 0，
// /0 网络对任何 index 均返回 false。
func (n Net) Nth(index uint64) (netip.Addr, bool) {
	if index >= n.mask.Len() {
		return netip.Addr{}, false
	}
	return AddrFromUint32(n.base + uint32(index)), true
}

// String 返回 CIDR 形式，如 "10.0.0.0/24"。
func (n Net) String() string {
	return n.Network().String() + n.mask.String()
}

// Extended 返回扩展形式，如 "10.0.0.0 255.255.255.0"。
func (n Net) Extended() string {
	return n.Network().String() + " " + n.mask.Extended()
}

// Prefix 返回等价的 [netip.Prefix]。
func (n Net) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.Network(), n.mask.PrefixLen())
}

// Range 返回网络覆盖的 [netipx.IPRange]（基址到广播地址）。
func (n Net) Range() netipx.IPRange {
	return netipx.IPRangeFrom(n.Network(), n.Broadcast())
}
