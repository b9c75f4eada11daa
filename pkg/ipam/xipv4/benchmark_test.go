package xipv4

import (
	"fmt"
	"testing"
)

// =============================================================================
// 网络文本解析基准测试
// =============================================================================

func BenchmarkParse(b *testing.B) {
	b.Run("CIDR", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_, _ = Parse("192.168.1.0/24")
		}
	})
	b.Run("Extended", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_, _ = Parse("192.168.1.0 255.255.255.0")
		}
	})
	b.Run("DottedMask", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_, _ = Parse("192.168.1.0/255.255.255.0")
		}
	})
	b.Run("BareAddr", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_, _ = Parse("192.168.1.1")
		}
	})
}

func BenchmarkNetString(b *testing.B) {
	n := MustParse("192.168.1.0/24")
	b.Run("CIDR", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_ = n.String()
		}
	})
	b.Run("Extended", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_ = n.Extended()
		}
	})
}

// =============================================================================
// 比较与包含关系基准测试
// =============================================================================

func BenchmarkCompare(b *testing.B) {
	a := MustParse("10.0.0.0/24")
	c := MustParse("10.0.1.0/24")
	for bi := 0; bi < b.N; bi++ {
		_ = a.Compare(c)
	}
}

func BenchmarkRel(b *testing.B) {
	parent := MustParse("10.0.0.0/16")
	child := MustParse("10.0.3.0/24")
	stranger := MustParse("192.168.1.0/24")

	b.Run("Supernet", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_ = parent.Rel(child)
		}
	})
	b.Run("None", func(b *testing.B) {
		for bi := 0; bi < b.N; bi++ {
			_ = parent.Rel(stranger)
		}
	})
}

// =============================================================================
// 兄弟块与子网运算基准测试
// =============================================================================

func BenchmarkNextSib(b *testing.B) {
	n := MustParse("10.0.0.0/24")
	for bi := 0; bi < b.N; bi++ {
		_, _ = n.NextSib()
	}
}

func BenchmarkGrow(b *testing.B) {
	n := MustParse("10.0.0.0/25")
	for bi := 0; bi < b.N; bi++ {
		_ = n.Grow()
	}
}

func BenchmarkNthSubnet(b *testing.B) {
	n := MustParse("10.0.0.0/16")
	for bi := 0; bi < b.N; bi++ {
		_, _ = n.NthSubnet(24, 100)
	}
}

// =============================================================================
// 列表汇总与填充基准测试
// =============================================================================

func BenchmarkSumm(b *testing.B) {
	// 256 个 /24，可完整汇总为一个 /16
	list := make(NetList, 256)
	for i := uint32(0); i < 256; i++ {
		mask, _ := NetmaskFromPrefix(24)
		list[i] = NewFromUint32(0x0A000000|i<<8, mask)
	}

	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		_ = list.Summ()
	}
}

func BenchmarkFill(b *testing.B) {
	parent := MustParse("172.16.0.0/16")
	for _, count := range []int{1, 8, 64} {
		candidates := make(NetList, count)
		for i := 0; i < count; i++ {
			mask, _ := NetmaskFromPrefix(24)
			// 隔块取 /24，制造大量缺口
			candidates[i] = NewFromUint32(0xAC100000|uint32(i)<<9, mask)
		}
		b.Run(fmt.Sprintf("candidates=%d", count), func(b *testing.B) {
			for bi := 0; bi < b.N; bi++ {
				_ = parent.Fill(candidates)
			}
		})
	}
}
