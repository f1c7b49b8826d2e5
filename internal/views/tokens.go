package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// shadeScale holds a Tailwind-style family from 100 (lightest) to 900.
type shadeScale [9]string

func (s shadeScale) at(shade int) (string, bool) {
	if shade < 100 || shade > 900 || shade%100 != 0 {
		return "", false
	}
	return s[shade/100-1], true
}

var families = map[string]shadeScale{
	"slate":  {"#F1F5F9", "#E2E8F0", "#CBD5E1", "#94A3B8", "#64748B", "#475569", "#334155", "#1E293B", "#0F172A"},
	"gray":   {"#F3F4F6", "#E5E7EB", "#D1D5DB", "#9CA3AF", "#6B7280", "#4B5563", "#374151", "#1F2937", "#111827"},
	"red":    {"#FEE2E2", "#FECACA", "#FCA5A5", "#F87171", "#EF4444", "#DC2626", "#B91C1C", "#991B1B", "#7F1D1D"},
	"amber":  {"#FEF3C7", "#FDE68A", "#FCD34D", "#FBBF24", "#F59E0B", "#D97706", "#B45309", "#92400E", "#78350F"},
	"green":  {"#DCFCE7", "#BBF7D0", "#86EFAC", "#4ADE80", "#22C55E", "#16A34A", "#15803D", "#166534", "#14532D"},
	"blue":   {"#DBEAFE", "#BFDBFE", "#93C5FD", "#60A5FA", "#3B82F6", "#2563EB", "#1D4ED8", "#1E40AF", "#1E3A8A"},
	"indigo": {"#E0E7FF", "#C7D2FE", "#A5B4FC", "#818CF8", "#6366F1", "#4F46E5", "#4338CA", "#3730A3", "#312E81"},
}

// ResolveToken maps a class token such as "bg-blue-100" or "text-white" to a
// terminal color. Unknown tokens resolve to no color.
func ResolveToken(token string) lipgloss.TerminalColor {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, prefix := range []string{"bg-", "text-"} {
		token = strings.TrimPrefix(token, prefix)
	}
	switch token {
	case "white":
		return lipgloss.Color("#FFFFFF")
	case "black":
		return lipgloss.Color("#000000")
	}
	idx := strings.LastIndex(token, "-")
	if idx < 0 {
		return lipgloss.NoColor{}
	}
	scale, ok := families[token[:idx]]
	if !ok {
		return lipgloss.NoColor{}
	}
	shade, err := strconv.Atoi(token[idx+1:])
	if err != nil {
		return lipgloss.NoColor{}
	}
	hex, ok := scale.at(shade)
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}
