package dto

// ChildRequest represents one child entry in a parent profile
type ChildRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Age   int    `json:"age" binding:"required,min=1,max=25"`
	Grade string `json:"grade" binding:"required"`
}

// UpdateParentProfileRequest represents parent profile update data
type UpdateParentProfileRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100"`
}

// UpdateChildrenRequest replaces the parent's children list in the given order
type UpdateChildrenRequest struct {
	Children []ChildRequest `json:"children" binding:"required,dive"`
}

// UpdateParentStatusRequest represents an admin moderation action on a parent
type UpdateParentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE BLOCKED"`
}
