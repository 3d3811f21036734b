package detox

import "errors"

var ErrRewardNotFound = errors.New("reward not found")
