package vm

import (
	"fmt"

	"github.com/kirin-lang/kirin/kerr"
)

func generalf(format string, args ...any) *kerr.KirinError {
	return kerr.NewGeneral(fmt.Sprintf(format, args...))
}
