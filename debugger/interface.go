package debugger

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kirin-lang/kirin/vm"
)

// RunCLI runs the command-line debugger interface.
func RunCLI(dbg *Debugger) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(kirin-dbg) ")

		if !scanner.Scan() {
			break
		}

		cmdLine := strings.TrimSpace(scanner.Text())

		if cmdLine == "quit" || cmdLine == "q" || cmdLine == "exit" {
			fmt.Println("Exiting debugger...")
			break
		}

		if err := dbg.ExecuteCommand(cmdLine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		output := dbg.GetOutput()
		if output != "" {
			fmt.Print(output)
		}

		if dbg.Running {
			for dbg.Running {
				if err := dbg.VM.Step(); err != nil {
					fmt.Printf("Runtime error: %v\n", err)
					dbg.Running = false
					break
				}

				if dbg.VM.Status == vm.Halted {
					dbg.Running = false
					fmt.Println("Program halted")
					break
				}
				if dbg.VM.Status == vm.Error {
					dbg.Running = false
					fmt.Printf("Runtime error: %v\n", dbg.VM.LastError)
					break
				}

				// Checked after each instruction, so a resumed run always
				// executes at least one instruction before it can stop again.
				if shouldBreak, reason := dbg.ShouldBreak(); shouldBreak {
					dbg.Running = false
					fmt.Printf("Stopped: %s at ip=%d\n", reason, dbg.VM.IP())
					break
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	return nil
}

// RunTUI runs the TUI (Text User Interface) debugger.
func RunTUI(dbg *Debugger) error {
	tui := NewTUI(dbg)
	return tui.Run()
}
