package chart

import (
	"fmt"
	"image/color"

	"github.com/kilianp07/santaviz/core/model"
)

// plasma samples the plasma colour map at r/NumChoices for every rank.
var plasma = [model.NumRanks]color.RGBA{
	{0x0d, 0x08, 0x87, 0xff},
	{0x41, 0x04, 0x9d, 0xff},
	{0x6a, 0x00, 0xa8, 0xff},
	{0x8f, 0x0d, 0xa4, 0xff},
	{0xb1, 0x2a, 0x90, 0xff},
	{0xcc, 0x47, 0x78, 0xff},
	{0xe1, 0x64, 0x62, 0xff},
	{0xf2, 0x84, 0x4b, 0xff},
	{0xfc, 0xa6, 0x36, 0xff},
	{0xfc, 0xce, 0x25, 0xff},
	{0xf0, 0xf9, 0x21, 0xff},
}

func rankColor(r int) color.RGBA { return plasma[r] }

func rankHex(r int) string {
	c := plasma[r]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func rankLabel(r int) string {
	if r == model.Unranked {
		return "other"
	}
	return fmt.Sprintf("choice %d", r)
}
