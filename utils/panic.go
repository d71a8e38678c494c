package utils

import (
	"github.com/vuuvv/vcrc/log"
)

func NormalRecover() {
	if r := recover(); r != nil {
		log.Error(r)
	}
}
