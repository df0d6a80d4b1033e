package chainmap

import (
	"testing"

	"github.com/xaionaro-go/chainmap/internal/factoriesOfOtherImplementations/builtinMap"
	"github.com/xaionaro-go/chainmap/internal/factoriesOfOtherImplementations/builtinSyncMap"
	"github.com/xaionaro-go/chainmap/internal/factoriesOfOtherImplementations/cornelkHashmap"
	routines "github.com/xaionaro-go/chainmap/internal/mapRoutines"
)

func TestBuiltinMap(t *testing.T) {
	routines.DoTest(t, builtinMap.NewWithArgs)
}

func TestBuiltinSyncMap(t *testing.T) {
	routines.DoTest(t, builtinSyncMap.NewWithArgs)
}

func TestCornelkHashmap(t *testing.T) {
	routines.DoTest(t, cornelkHashmap.NewWithArgs)
}
