package bmp2c

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// The 16x8 sampler shipped with the tool: a box outline, a checker band
// and a centered triangle, row-packed.
var example16x8 = []byte{
	0x00, 0x00, 0xFF, 0x81, 0x81, 0xFF, 0x00, 0x00,
	0x55, 0xAA, 0xCC, 0x33, 0x0F, 0xF0, 0x18, 0x18,
}

const example16x8Source = `/* =========================================================================
 *  File: Example16x8.c
 *  Desc: Auto-generated from BMP (1-bpp). Packing: Row-major, LSB-first.
 *        Scan: top-left → left-to-right, top-to-bottom. Black=1.
 *        Size: 16x8 px. Bytes: 16.
 *  Notes: Generated to align with MISRA C:2004/2008 guidelines (style/comments).
 *  Tool : bmp2c v0.1.0
 *  Repo : https://github.com/AlisonLuan/bmp2c
 *  Gen  : This file is generated — do not edit by hand.
 *  Reminder (author): Please keep the repository link in this header when sharing/redistributing.
 * ========================================================================= */

#include <stdint.h>  /* for uint8_t */

/* Image data */
const unsigned char Example16x8[16] =
{
    0x00, 0x00, 0xFF, 0x81, 0x81, 0xFF, 0x00, 0x00, 0x55, 0xAA, 0xCC, 0x33,
    0x0F, 0xF0, 0x18, 0x18
};

/* Optional (only if --emit-dims): */
#define EXAMPLE16X8_WIDTH   16
#define EXAMPLE16X8_HEIGHT  8
`

var _ = Describe("RenderSingle", func() {
	It("reproduces the Example16x8 source byte for byte", func() {
		out := RenderSingle("Example16x8", 16, 8, example16x8, RenderOptions{EmitDims: true})
		Expect(out).To(Equal(example16x8Source))
	})

	It("declares one array element per packed byte", func() {
		out := RenderSingle("Example16x8", 16, 8, example16x8, RenderOptions{EmitDims: true})
		Expect(strings.Count(out, "0x")).To(Equal(16))
		Expect(out).To(ContainSubstring("const unsigned char Example16x8[16] ="))
	})

	It("omits the dims macros by default", func() {
		out := RenderSingle("Example16x8", 16, 8, example16x8, RenderOptions{})
		Expect(out).NotTo(ContainSubstring("#define"))
	})

	It("wraps hex values at the configured count", func() {
		out := RenderSingle("x", 16, 5, make([]byte, 10), RenderOptions{ValuesPerLine: 4})
		Expect(strings.Count(out, "\n    0x")).To(Equal(3))
		Expect(out).To(ContainSubstring("    0x00, 0x00, 0x00, 0x00,\n"))
		Expect(out).To(ContainSubstring("    0x00, 0x00\n};"))
	})

	It("describes page packing in the header", func() {
		out := RenderSingle("x", 8, 8, make([]byte, 8), RenderOptions{Mode: PackPage})
		Expect(out).To(ContainSubstring("Packing: Vertical pages (8px), LSB-first."))
	})
})

var _ = Describe("RenderMatrix", func() {
	entries := func() []Result {
		return []Result{
			{Symbol: "a", Width: 16, Height: 8, Data: example16x8, SourcePath: "icons/a.bmp"},
			{Symbol: "b", Width: 16, Height: 8, Data: make([]byte, 16), SourcePath: "icons/b.bmp"},
		}
	}

	It("emits one block per image in order", func() {
		out := RenderMatrix("icons", entries(), RenderOptions{})
		Expect(out).To(ContainSubstring("const unsigned char icons_Matrix[2][16] ="))
		first := strings.Index(out, "/* name: a.bmp */ {")
		second := strings.Index(out, "/* name: b.bmp */ {")
		Expect(first).To(BeNumerically(">", 0))
		Expect(second).To(BeNumerically(">", first))
		Expect(out).To(ContainSubstring("Count: 2. Bytes/img: 16."))
	})

	It("emits the count and size macros with --emit-dims", func() {
		out := RenderMatrix("icons", entries(), RenderOptions{EmitDims: true})
		Expect(out).To(ContainSubstring("#define ICONS_COUNT 2"))
		Expect(out).To(ContainSubstring("#define ICONS_W     16"))
		Expect(out).To(ContainSubstring("#define ICONS_H     8"))
		Expect(out).To(ContainSubstring("#define ICONS_BPI   16"))
	})
})
