package dto

// UserContext identifies the requesting user for ownership scoping.
type UserContext struct {
	UserId int64
}

// Pagination caps and offsets result sets.
type Pagination struct {
	Limit  int
	Offset int
}
