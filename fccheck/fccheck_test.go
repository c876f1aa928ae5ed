package main

import (
	"testing"

	"github.com/evoldyn/codonfc/fc"
)

func TestNullOptionsFromFlags(tst *testing.T) {
	*null = 5000
	*seed = 42
	*direction = "upper"
	*progress = 500

	opt := nullOptions()
	if opt.Trials != 5000 || opt.Seed != 42 {
		tst.Error("Wrong trials/seed:", opt.Trials, opt.Seed)
	}
	if opt.Direction != fc.Upper {
		tst.Error("Direction flag not honored")
	}
	if opt.Progress != 500 {
		tst.Error("Heartbeat should follow the progress flag, got", opt.Progress)
	}

	*direction = "lower"
	if nullOptions().Direction != fc.Lower {
		tst.Error("Direction flag not honored")
	}
}
