package emulator_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/cieasm/cpu"
	"github.com/ezrec/cieasm/emulator"
)

var _ = Describe("Scenario", func() {
	var (
		emu    *emulator.Emulator
		output *bytes.Buffer
	)

	load := func(lines ...string) {
		Expect(emu.LoadString(strings.Join(lines, "\n"))).To(Succeed())
	}

	BeforeEach(func() {
		emu = emulator.NewEmulator()
		output = &bytes.Buffer{}
		emu.Tape.Output = output
	})

	It("should echo characters until a full stop", func() {
		emu.Tape.Input = strings.NewReader("H\ni\n.\n")
		emu.Cpu.Base = cpu.ASCII
		load(
			"LOOP: IN",
			"      CMP #46   ; '.'",
			"      JPE DONE",
			"      OUT",
			"      JMP LOOP",
			"DONE: END",
		)

		Expect(emu.Run()).To(Succeed())
		Expect(emu.State()).To(Equal(emulator.STATE_HALTED))
		Expect(output.String()).To(Equal("\"H\"\n\"i\"\n"))
	})

	It("should sum an array through the index register", func() {
		emu.SetMemory("ARR", 3)
		emu.SetMemory("ARR+1", 4)
		emu.SetMemory("ARR+2", 5)
		load(
			"       LDM #0",
			"       STO SUM",
			"LOOP:  LDX ARR",
			"       ADD SUM",
			"       STO SUM",
			"       INC IX",
			"       LDD IX",
			"       CMP #3",
			"       JPN LOOP",
			"       LDD SUM",
			"       OUT",
			"       END",
		)

		Expect(emu.Run()).To(Succeed())
		Expect(emu.Cpu.Memory.Get("SUM")).To(Equal(cpu.Word(12)))
		Expect(output.String()).To(Equal("#12\n"))
	})

	It("should print in every display base", func() {
		load("LDM #b1010", "OUT", "END")

		for _, base := range []cpu.Base{cpu.BASE2, cpu.BASE10, cpu.BASE16} {
			emu.Stop()
			emu.Cpu.Base = base
			Expect(emu.Run()).To(Succeed())
		}

		Expect(output.String()).To(Equal("#b1010\n#10\n#&a\n"))
	})

	It("should wrap arithmetic at the word size", func() {
		load(
			"LDM #127",
			"ADD #1",
			"OUT",
			"LDM #1",
			"LSL #7",
			"OUT",
			"END",
		)

		Expect(emu.Run()).To(Succeed())
		Expect(output.String()).To(Equal("#-128\n#-128\n"))
	})

	It("should report warnings without stopping", func() {
		load("LDI X", "OUT #1", "END")

		done, err := emu.Tick()
		Expect(err).NotTo(HaveOccurred())
		Expect(done).To(BeFalse())
		Expect(emu.Last.Warnings).To(ContainElement(cpu.ErrIndirect))

		done, err = emu.Tick()
		Expect(err).NotTo(HaveOccurred())
		Expect(done).To(BeFalse())
		Expect(emu.Last.Warnings).To(ContainElement(cpu.ErrOperandIgnored))

		Expect(emu.Run()).To(Succeed())
		Expect(emu.State()).To(Equal(emulator.STATE_HALTED))
	})

	It("should abort on a jump to an undefined label", func() {
		load("JMP AWAY")

		err := emu.Run()
		Expect(err).To(HaveOccurred())
		Expect(err).To(MatchError(ContainSubstring("AWAY")))
		Expect(emu.State()).To(Equal(emulator.STATE_ABORTED))

		_, err = emu.Tick()
		Expect(err).To(MatchError(emulator.ErrAborted))
	})

	It("should abort when input runs out", func() {
		emu.Tape.Input = strings.NewReader("")
		load("IN", "END")

		err := emu.Run()
		Expect(err).To(HaveOccurred())
		Expect(emu.State()).To(Equal(emulator.STATE_ABORTED))
	})
})
