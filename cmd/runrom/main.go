// Command runrom is a reference harness for exercising the cpu package
// against a flat binary image: load it at a base address, optionally set
// the reset vector to point at it directly, and single-step the CPU,
// printing (with --trace) a disassembly line and register snapshot before
// each instruction and a final register/cycle line at the end. It deliberately has no notion of cartridges, mappers or any
// other NES-specific loading convention — that is out of scope — it is a
// debugging aid for the CPU core in isolation, grounded on the cobra-based
// command layout in oisee-z80-optimizer/cmd/z80opt/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/jchacon-labs/m6502core/cpu"
	"github.com/jchacon-labs/m6502core/disassemble"
	"github.com/jchacon-labs/m6502core/irq"
	"github.com/jchacon-labs/m6502core/memory"
	"github.com/spf13/cobra"
)

func main() {
	var (
		loadAddr   uint16
		entryAddr  uint16
		setEntry   bool
		maxSteps   int
		trace      bool
		strictPush bool
	)

	rootCmd := &cobra.Command{
		Use:   "runrom [binary]",
		Short: "Single-step a flat 6502 binary image through the CPU core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			bus := memory.NewFlatBus()
			bus.Load(loadAddr, data)
			if setEntry {
				bus.Write8(cpu.ResetVector, uint8(entryAddr))
				bus.Write8(cpu.ResetVector+1, uint8(entryAddr>>8))
			}

			var opts []cpu.Option
			if strictPush {
				opts = append(opts, cpu.WithStrictStack())
			}
			nmi := &irq.EdgeLatch{}
			irqLine := &irq.Line{}
			c := cpu.New(bus, nmi, irqLine, opts...)
			c.Reset()

			for i := 0; maxSteps == 0 || i < maxSteps; i++ {
				if trace {
					text, _ := disassemble.Step(c.Registers().PC, bus)
					fmt.Printf("%-40s %s\n", text, c)
				}
				if _, err := c.Step(); err != nil {
					fmt.Fprintf(os.Stderr, "halted: %v\n", err)
					break
				}
			}
			fmt.Printf("final: %s cycles=%d\n", c, c.Cycles())
			return nil
		},
	}

	rootCmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x8000, "address to load the binary at")
	rootCmd.Flags().Uint16Var(&entryAddr, "entry", 0x8000, "entry point written into the reset vector")
	rootCmd.Flags().BoolVar(&setEntry, "set-entry", true, "overwrite the reset vector with --entry")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 10000, "maximum instructions to execute (0 = unbounded)")
	rootCmd.Flags().BoolVarP(&trace, "trace", "t", false, "print a disassembly/register trace line per instruction")
	rootCmd.Flags().BoolVar(&strictPush, "strict-stack", false, "fail instead of wrapping on stack pointer exhaustion")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
