package chatbot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// formatService renders one numbered service block. Optional lines are
// omitted when the field is empty.
func formatService(index int, s domain.Service) string {
	lines := []string{fmt.Sprintf("%d. %s", index, s.Name)}
	lines = appendField(lines, "Area", s.AreaName)
	lines = appendField(lines, "Address", s.Address)
	lines = appendField(lines, "Phone", s.Phone)
	lines = appendField(lines, "Open hours", s.OpenHours)
	lines = appendField(lines, "Notes", s.Notes)
	return strings.Join(lines, "\n")
}

// formatPlace renders one numbered place block. A nil rating omits the
// rating line.
func formatPlace(index int, p domain.Place, rating *float64) string {
	lines := []string{
		fmt.Sprintf("%d. %s", index, p.Name),
		"   Category: " + p.Category.DisplayName(),
	}
	lines = appendField(lines, "Area", p.AreaName)
	if rating != nil {
		lines = append(lines, fmt.Sprintf("   Rating: %s stars %s", strconv.FormatFloat(*rating, 'f', 1, 64), stars(*rating)))
	}
	lines = appendField(lines, "About", p.Description)
	return strings.Join(lines, "\n")
}

func appendField(lines []string, label, value string) []string {
	if value == "" {
		return lines
	}
	return append(lines, "   "+label+": "+value)
}

// stars renders a five glyph bar for avg rounded half to even and clamped
// to [0, 5].
func stars(avg float64) string {
	full := int(math.RoundToEven(avg))
	full = min(max(full, 0), 5)
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// listing joins numbered blocks under a header.
func listing(header string, blocks []string) string {
	return header + ":\n\n" + strings.Join(blocks, "\n\n")
}
