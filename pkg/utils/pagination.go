package utils

// CalculateTotalPages returns ceil(total/limit), 0 for empty input.
func CalculateTotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// CalculateOffset returns how many documents to skip for the given page.
func CalculateOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
