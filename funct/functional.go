package funct

func Map[T any, R any](slide []T, transformer func(x T) (R, error)) ([]R, error) {
	var newSlide []R

	for _, v := range slide {
		newValue, err := transformer(v)
		if err != nil {
			return nil, err
		}

		newSlide = append(
			newSlide,
			newValue,
		)
	}
	return newSlide, nil
}

func Filter[T any](slide []T, cond func(x T) bool) []T {
	var newSlide []T

	for _, v := range slide {
		if cond(v) {
			newSlide = append(newSlide, v)
		}
	}
	return newSlide
}

func Index[T any](slide []T, cond func(x T) bool) int {
	for i, v := range slide {
		if cond(v) {
			return i
		}
	}
	return -1
}

func Some[T any](slide []T, cond func(x T) bool) bool {
	for _, v := range slide {
		if cond(v) {
			return true
		}
	}
	return false
}

func Count[T any](slide []T, cond func(x T) bool) int {
	count := 0
	for _, v := range slide {
		if cond(v) {
			count++
		}
	}
	return count
}
