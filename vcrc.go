package vcrc

import (
	"github.com/vuuvv/vcrc/checksum"
	"github.com/vuuvv/vcrc/core"
	"github.com/vuuvv/vcrc/crc16"
	"github.com/vuuvv/vcrc/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Params = crc16.Params
type Variant = crc16.Variant
type Table = crc16.Table

var Lookup = crc16.Lookup
var Variants = crc16.Variants
var Table16 = crc16.Table16
var Hacker16 = crc16.Hacker16
var Reflect16 = crc16.Reflect16

var Internet = checksum.Internet
var UDP = checksum.UDP
var TCP = checksum.TCP
var Fletcher16 = checksum.Fletcher16

type Checker = core.Checker
type Config = core.Config
type FrameRule = core.FrameRule

var Crc = core.Crc
var NewChecker = core.NewChecker
var NewCheckerFromBytes = core.NewCheckerFromBytes
var NewCheckerFromFile = core.NewCheckerFromFile

// Setup installs a development logger unless the zap globals already carry one.
func Setup() {
	var logger *zap.Logger
	var err error
	if !zap.L().Core().Enabled(zapcore.PanicLevel) {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	} else {
		logger = zap.L()
	}
	log.SetDefaultLogger(logger)
}
