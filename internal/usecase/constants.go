package usecase

const (
	// DefaultPageSize is applied when a list request omits a limit.
	DefaultPageSize = 20

	// MaxPageSize caps page sizes to keep scans bounded.
	MaxPageSize = 100
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}

	if limit > MaxPageSize {
		return MaxPageSize
	}

	return limit
}
