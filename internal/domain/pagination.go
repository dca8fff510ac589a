package domain

type Pagination struct {
	Skip int
	Take int
}

func (p Pagination) Limit() int {
	return p.Take
}

func (p Pagination) Offset() int {
	return p.Skip
}
