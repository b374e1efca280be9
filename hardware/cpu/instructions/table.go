// generated code - do not change

package instructions

// GetDefinitions returns the table of instruction definitions for the AVR core
func GetDefinitions() []*Definition {
	return []*Definition{
		{Operator: Nop, Pattern: 0x0000, Mask: 0xffff, Layout: LayoutNone, Words: 1, Cycles: 1, Effect: Transfer},
		{Operator: Add, Pattern: 0x0c00, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Adc, Pattern: 0x1c00, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Sub, Pattern: 0x1800, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Sbc, Pattern: 0x0800, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: And, Pattern: 0x2000, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Eor, Pattern: 0x2400, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Or, Pattern: 0x2800, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Mov, Pattern: 0x2c00, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Transfer},
		{Operator: Cp, Pattern: 0x1400, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Compare},
		{Operator: Cpc, Pattern: 0x0400, Mask: 0xfc00, Layout: LayoutRdRr, Words: 1, Cycles: 1, Effect: Compare},
		{Operator: Ldi, Pattern: 0xe000, Mask: 0xf000, Layout: LayoutRdK, Words: 1, Cycles: 1, Effect: Transfer},
		{Operator: Cpi, Pattern: 0x3000, Mask: 0xf000, Layout: LayoutRdK, Words: 1, Cycles: 1, Effect: Compare},
		{Operator: Sbci, Pattern: 0x4000, Mask: 0xf000, Layout: LayoutRdK, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Subi, Pattern: 0x5000, Mask: 0xf000, Layout: LayoutRdK, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Ori, Pattern: 0x6000, Mask: 0xf000, Layout: LayoutRdK, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Andi, Pattern: 0x7000, Mask: 0xf000, Layout: LayoutRdK, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Com, Pattern: 0x9400, Mask: 0xfe0f, Layout: LayoutRd, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Neg, Pattern: 0x9401, Mask: 0xfe0f, Layout: LayoutRd, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Inc, Pattern: 0x9403, Mask: 0xfe0f, Layout: LayoutRd, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Dec, Pattern: 0x940a, Mask: 0xfe0f, Layout: LayoutRd, Words: 1, Cycles: 1, Effect: Arithmetic},
		{Operator: Bset, Pattern: 0x9408, Mask: 0xff8f, Layout: LayoutBit, Words: 1, Cycles: 1, Effect: Status},
		{Operator: Bclr, Pattern: 0x9488, Mask: 0xff8f, Layout: LayoutBit, Words: 1, Cycles: 1, Effect: Status},
		{Operator: Rjmp, Pattern: 0xc000, Mask: 0xf000, Layout: LayoutRelative, Words: 1, Cycles: 2, Effect: Flow},
		{Operator: Jmp, Pattern: 0x940c, Mask: 0xfe0e, Layout: LayoutAbsolute, Words: 2, Cycles: 3, Effect: Flow},
		{Operator: Call, Pattern: 0x940e, Mask: 0xfe0e, Layout: LayoutAbsolute, Words: 2, Cycles: 4, Effect: Subroutine},
		{Operator: Rcall, Pattern: 0xd000, Mask: 0xf000, Layout: LayoutRelative, Words: 1, Cycles: 3, Effect: Subroutine},
		{Operator: Ret, Pattern: 0x9508, Mask: 0xffff, Layout: LayoutNone, Words: 1, Cycles: 4, Effect: Subroutine},
		{Operator: Push, Pattern: 0x920f, Mask: 0xfe0f, Layout: LayoutRr, Words: 1, Cycles: 2, Effect: Stack},
		{Operator: Pop, Pattern: 0x900f, Mask: 0xfe0f, Layout: LayoutRd, Words: 1, Cycles: 2, Effect: Stack},
		{Operator: In, Pattern: 0xb000, Mask: 0xf800, Layout: LayoutRdA, Words: 1, Cycles: 1, Effect: IO},
		{Operator: Out, Pattern: 0xb800, Mask: 0xf800, Layout: LayoutARr, Words: 1, Cycles: 1, Effect: IO},
		{Operator: Ldd, Pattern: 0x8008, Mask: 0xd208, Layout: LayoutRdQ, Words: 1, Cycles: 2, Effect: Memory},
		{Operator: Std, Pattern: 0x8208, Mask: 0xd208, Layout: LayoutQRr, Words: 1, Cycles: 2, Effect: Memory},
	}
}
