package service

import "errors"

var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrCropNotFound      = errors.New("crop not found")
	ErrBuyerNeedNotFound = errors.New("buyer need not found")
)
