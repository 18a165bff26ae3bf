package services

// NotFoundError means the referenced record does not exist. Controllers map
// it to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError is a business-rule rejection (duplicate email, insufficient
// stock, bad state transition). Controllers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnauthorizedError covers bad credentials. Controllers map it to 401.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}
