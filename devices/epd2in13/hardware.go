package epd2in13

import (
	"fmt"
	"io"
	"sync"
	"time"

	"periph.io/x/periph/conn"
	"periph.io/x/periph/conn/gpio"
)

// busyIdleLevel is what the busy pin reads once the controller is ready for
// the next command.
const busyIdleLevel = gpio.High

// busyPollInterval is the sleep between busy pin samples.
const busyPollInterval = 10 * time.Millisecond

// hardware frames bus transactions for the controller: one opcode byte with
// DC low, then payload bytes with DC high, CS asserted for the duration of
// each phase. It also owns the reset pulse and busy polling. It knows
// nothing about what the opcodes mean.
type hardware struct {
	txLimit int

	mut sync.Mutex
	// c is a periph conn.Conn.
	c conn.Conn

	// busy pin, read while waiting for the device to be ready.
	busy gpio.PinIO
	// cs is the Chip Enable pin.
	cs gpio.PinOut
	// dc is the data/command pin.
	dc gpio.PinOut
	// rst is the reset pin.
	rst gpio.PinOut
}

// reset drives the reset line low for pulse, back high, then waits settle
// before returning.
func (h *hardware) reset(pulse, settle time.Duration) error {
	if err := h.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", h.rst.String(), gpio.Low.String(), err)
	}
	time.Sleep(pulse)
	if err := h.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", h.rst.String(), gpio.High.String(), err)
	}
	time.Sleep(settle)
	return nil
}

// waitUntilIdle polls the busy pin until it reads busyIdleLevel. There is no
// timeout: a busy line that never settles (hardware fault, miswiring) blocks
// forever. That is the controller's documented contract, not a bug here.
func (h *hardware) waitUntilIdle() {
	for h.busy.Read() != busyIdleLevel {
		time.Sleep(busyPollInterval)
	}
}

func (h *hardware) sendCommand(cmd command) error {
	_, err := (&commandWriter{h}).Write([]byte{byte(cmd)})
	return err
}

func (h *hardware) sendCommandWithData(cmd command, data []byte) error {
	_, err := (&commandWriter{h}).Write(append([]byte{byte(cmd)}, data...))
	return err
}

type dataWriter struct {
	*hardware
}

func (w *dataWriter) Write(p []byte) (n int, err error) {
	w.mut.Lock()
	defer w.mut.Unlock()
	if len(p) == 0 {
		return 0, nil
	}
	if err := w.dc.Out(gpio.High); err != nil {
		return 0, fmt.Errorf("%v.Out(%v) = %w", w.dc.String(), gpio.High.String(), err)
	}
	if err := w.cs.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("%v.Out(%v) = %w", w.cs.String(), gpio.Low.String(), err)
	}
	defer func() {
		if e := w.cs.Out(gpio.High); e != nil && err == nil {
			err = fmt.Errorf("%v.Out(%v) = %w", w.cs.String(), gpio.High.String(), e)
		}
	}()
	if len(p) > w.txLimit {
		p = p[:w.txLimit]
		err = io.ErrShortWrite
	}
	if txErr := w.c.Tx(p, nil); txErr != nil {
		return 0, txErr
	}
	return len(p), err
}

type commandWriter struct {
	*hardware
}

func (w *commandWriter) writeCommand(p byte) (err error) {
	w.mut.Lock()
	defer w.mut.Unlock()
	if err := w.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", w.dc.String(), gpio.Low.String(), err)
	}
	if err := w.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", w.cs.String(), gpio.Low.String(), err)
	}
	defer func() {
		if e := w.cs.Out(gpio.High); e != nil && err == nil {
			err = fmt.Errorf("%v.Out(%v) = %w", w.cs.String(), gpio.High.String(), e)
		}
	}()
	if err := w.c.Tx([]byte{p}, nil); err != nil {
		return fmt.Errorf("sending command %s: %w", command(p).String(), err)
	}
	return nil
}

// Write sends p[0] as a command byte, then any remaining bytes as data.
func (w *commandWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	cmd, data := p[0], p[1:]
	if err := w.writeCommand(cmd); err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 1, nil
	}
	n, err := (&batchedWriter{&dataWriter{w.hardware}, w.txLimit}).Write(data)
	return 1 + n, err
}

// batchedWriter splits writes into chunks the SPI driver will accept.
type batchedWriter struct {
	dst       io.Writer
	batchSize int
}

func (b *batchedWriter) Write(p []byte) (int, error) {
	var sent int
	for i := 0; i < len(p); i += b.batchSize {
		j := i + b.batchSize
		if j > len(p) {
			j = len(p)
		}
		n, err := b.dst.Write(p[i:j])
		sent += n
		if err != nil {
			return sent, err
		}
	}
	return sent, nil
}
