package site

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Icon is a manifest icon entry.
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// SizedIcon pairs an icon with one of its declared sizes.
type SizedIcon struct {
	Icon Icon
	Size int
}

// IconList returns one entry per declared size of every icon usable for
// purpose, smallest first. An empty purpose means "any", and so does an icon
// without one. The size "any" sorts after every fixed size.
func IconList(icons []Icon, purpose string) []SizedIcon {
	if purpose == "" {
		purpose = "any"
	}

	var list []SizedIcon
	for _, icon := range icons {
		purposes := strings.Fields(icon.Purpose)
		if len(purposes) == 0 {
			purposes = []string{"any"}
		}
		if !slices.Contains(purposes, purpose) {
			continue
		}

		for _, token := range strings.Fields(icon.Sizes) {
			size, ok := parseSize(token)
			if !ok {
				continue
			}
			list = append(list, SizedIcon{Icon: icon, Size: size})
		}
	}

	slices.SortStableFunc(list, func(a, b SizedIcon) int {
		return cmp.Compare(a.Size, b.Size)
	})
	return list
}

// PickIcon returns the source of the smallest icon at least size pixels
// wide, or of the largest icon when none is big enough.
func PickIcon(list []SizedIcon, size int) (string, bool) {
	if len(list) == 0 {
		return "", false
	}
	for _, icon := range list {
		if icon.Size >= size {
			return icon.Icon.Src, true
		}
	}
	return list[len(list)-1].Icon.Src, true
}

func parseSize(token string) (int, bool) {
	if strings.EqualFold(token, "any") {
		return math.MaxInt32, true
	}
	width, _, _ := strings.Cut(strings.ToLower(token), "x")
	n, err := strconv.Atoi(width)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
