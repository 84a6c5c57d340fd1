package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
)

// ChangeNotifier receives a signal after every successful mutation. The app
// container wires it to the websocket change feed and the analytics cache
// invalidation; usecases only report what changed.
type ChangeNotifier interface {
	EntityChanged(entity, action string, id int64)
}

type nopNotifier struct{}

func (nopNotifier) EntityChanged(string, string, int64) {}

func notifierOrNop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
