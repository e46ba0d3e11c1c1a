package steam

import "fmt"

// FetchError is returned for any failed Steam Web API call. Status is the
// HTTP status code when a response was received, zero for transport
// errors. Err carries the underlying cause when one exists.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
