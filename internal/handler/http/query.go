package http

import "strconv"

func queryString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
