package service

import "errors"

var ErrForbidden = errors.New("admin role required")
