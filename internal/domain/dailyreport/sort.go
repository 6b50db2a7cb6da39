package dailyreport

import (
	"sort"
	"strings"

	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
)

// SortByEmployeeCode orders details by numeric employee code ascending.
// Non-numeric codes follow in lexical order, then details without a code.
func SortByEmployeeCode(details []Detail) {
	sort.SliceStable(details, func(i, j int) bool {
		return lessEmployeeCode(details[i].EmployeeCode, details[j].EmployeeCode)
	})
}

func codeRank(code *string) int {
	switch {
	case code == nil || validator.IsEmpty(*code):
		return 2
	case validator.IsNumeric(strings.TrimSpace(*code)):
		return 0
	default:
		return 1
	}
}

func lessEmployeeCode(a, b *string) bool {
	ra, rb := codeRank(a), codeRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		na := strings.TrimLeft(strings.TrimSpace(*a), "0")
		nb := strings.TrimLeft(strings.TrimSpace(*b), "0")
		if len(na) != len(nb) {
			return len(na) < len(nb)
		}
		if na != nb {
			return na < nb
		}
		return *a < *b
	case 1:
		return *a < *b
	default:
		return false
	}
}
