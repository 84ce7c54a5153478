package document

import (
	"slices"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
)

// AllToken selects every completed task of a section in archive references.
const AllToken = "all"

// Ref identifies tasks as "Section:N", "Section:N,M,..." or "Section:all".
type Ref struct {
	Section string
	Numbers []int // ascending, unique
	All     bool
}

// ParseRef parses a task reference. The section ends at the last colon, so
// section names may themselves contain colons.
func ParseRef(s string) (Ref, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return Ref{}, invalidRef(s)
	}
	ref := Ref{Section: strings.TrimSpace(s[:i])}
	if ref.Section == "" {
		return Ref{}, invalidRef(s)
	}

	list := strings.TrimSpace(s[i+1:])
	if strings.EqualFold(list, AllToken) {
		ref.All = true
		return ref, nil
	}

	nums, err := ParseNumbers(list)
	if err != nil {
		return Ref{}, err
	}
	ref.Numbers = nums
	return ref, nil
}

// ParseNumbers splits a comma-separated list into sorted, de-duplicated
// task numbers. Empty elements are skipped. Range is not checked here.
func ParseNumbers(list string) ([]int, error) {
	var nums []int
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, invalidNumber(p)
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, invalidNumber(list)
	}

	slices.Sort(nums)
	return slices.Compact(nums), nil
}

// Single returns the only task number of the reference.
func (r Ref) Single() (int, error) {
	if r.All || len(r.Numbers) != 1 {
		return 0, clierr.Newf(clierr.InvalidReference,
			"expected a single task number in '%s'", r.String())
	}
	return r.Numbers[0], nil
}

// String formats the reference back into Section:N,M or Section:all form.
func (r Ref) String() string {
	if r.All {
		return r.Section + ":" + AllToken
	}
	parts := make([]string, len(r.Numbers))
	for i, n := range r.Numbers {
		parts[i] = strconv.Itoa(n)
	}
	return r.Section + ":" + strings.Join(parts, ",")
}
