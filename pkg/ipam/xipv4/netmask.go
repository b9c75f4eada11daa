package xipv4

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// Netmask 表示 IPv4 前缀掩码：前缀长度 ∈ [0,32] 及其派生的 32 位掩码值。
// 掩码值永远是左对齐的连续 1 比特（/0 为 0，/32 为 0xFFFFFFFF），
// 不会从任意位模式构造。零值等价于 /0。
type Netmask struct {
	prefix uint8
}

// NetmaskFromPrefix 从前缀长度创建掩码。
// prefix 超出 [0,32] 时返回 [ErrInvalidPrefixLen]。
func NetmaskFromPrefix(prefix int) (Netmask, error) {
	if prefix < 0 || prefix > 32 {
		return Netmask{}, fmt.Errorf("%w: %d", ErrInvalidPrefixLen, prefix)
	}
	return Netmask{prefix: uint8(prefix)}, nil
}

// ParseNetmask 解析掩码文本。支持三种格式：
//   - 前缀长度: "24"
//   - 斜线前缀: "/24"
//   - 点分掩码: "255.255.255.0"（必须是连续掩码）
//
// 输入会自动去除首尾空白字符。
func ParseNetmask(s string) (Netmask, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		return parseDottedMask(s)
	}
	prefix, err := strconv.Atoi(strings.TrimPrefix(s, "/"))
	if err != nil {
		return Netmask{}, fmt.Errorf("%w: %q", ErrInvalidNetmask, s)
	}
	return NetmaskFromPrefix(prefix)
}

// parseDottedMask 解析点分掩码格式，包含掩码连续性校验。
// 非连续掩码（如 "255.0.255.0"）返回 [ErrInvalidNetmask]。
func parseDottedMask(s string) (Netmask, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Netmask{}, fmt.Errorf("%w: %q", ErrInvalidNetmask, s)
	}
	v, ok := AddrToUint32(addr)
	if !ok {
		return Netmask{}, fmt.Errorf("%w: %q is not IPv4", ErrInvalidNetmask, s)
	}
	// 合法掩码为前缀全 1 后缀全 0。
	inverted := ^v
	if inverted&(inverted+1) != 0 {
		return Netmask{}, fmt.Errorf("%w: non-contiguous mask %q", ErrInvalidNetmask, s)
	}
	return Netmask{prefix: uint8(bits.OnesCount32(v))}, nil
}

// PrefixLen 返回前缀长度。
func (m Netmask) PrefixLen() int {
	return int(m.prefix)
}

// Mask 返回 32 位掩码值：最高 prefix 位为 1，其余为 0。
func (m Netmask) Mask() uint32 {
	if m.prefix == 0 {
		return 0
	}
	return allOnes << (32 - m.prefix)
}

// HostMask 返回主机掩码（掩码值按位取反）。
func (m Netmask) HostMask() uint32 {
	return ^m.Mask()
}

// Len 返回掩码覆盖的地址数量 2^(32-prefix)。
// /0 返回 0 哨兵值，表示"无界/不可表示"而非"为空"，
// 调用方不得将 0 理解为空网络。
func (m Netmask) Len() uint64 {
	if m.prefix == 0 {
		return 0
	}
	return uint64(1) << (32 - m.prefix)
}

// Compare 按地址容量比较两个掩码：前缀更短（覆盖地址更多）者更大。
// 返回 -1/0/1。
func (m Netmask) Compare(other Netmask) int {
	switch {
	case m.prefix < other.prefix:
		return 1
	case m.prefix > other.prefix:
		return -1
	}
	return 0
}

// String 返回斜线前缀形式，如 "/24"。
func (m Netmask) String() string {
	return "/" + strconv.Itoa(int(m.prefix))
}

// Extended 返回点分掩码形式，如 "255.255.255.0"。
func (m Netmask) Extended() string {
	return AddrFromUint32(m.Mask()).String()
}
