package chainmap

// NotFound - Custom error to inform that no entry was found for a key
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}

// IndexOutOfRange - Custom error to inform that a given bucket index is outside the bucket array
type IndexOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket index is outside the bucket array
func (E IndexOutOfRange) Error() string {
	if E.msg == "" {
		return "bucket index out of range"
	}
	return E.msg
}

// Is - Lets errors.Is match on the error type regardless of message
func (E IndexOutOfRange) Is(target error) bool {
	_, ok := target.(IndexOutOfRange)
	return ok
}
