package epd2in13

// command is an SSD16xx controller opcode. The payload shape of each opcode
// (byte count and bit layout) is fixed by the controller datasheet.
type command byte

const (
	driverOutputControl     command = 0x01
	gateDrivingVoltage      command = 0x03
	sourceDrivingVoltage    command = 0x04
	boosterSoftStart        command = 0x0C
	deepSleepMode           command = 0x10
	dataEntryMode           command = 0x11
	swReset                 command = 0x12
	hvReadyDetection        command = 0x14
	vciDetection            command = 0x15
	tempSensorControl       command = 0x18
	tempSensorWrite         command = 0x1A
	masterActivation        command = 0x20
	displayUpdateControl1   command = 0x21
	displayUpdateControl2   command = 0x22
	writeRAM                command = 0x24
	writeRAMRed             command = 0x26
	readRAM                 command = 0x27
	vcomSense               command = 0x28
	vcomSenseDuration       command = 0x29
	writeVcomRegister       command = 0x2C
	statusBitRead           command = 0x2F
	writeLutRegister        command = 0x32
	setDummyLinePeriod      command = 0x3A
	setGateLineWidth        command = 0x3B
	borderWaveformControl   command = 0x3C
	setRamXStartEnd         command = 0x44
	setRamYStartEnd         command = 0x45
	setRamXAddressCounter   command = 0x4E
	setRamYAddressCounter   command = 0x4F
	nop                     command = 0x7F
)

func (c command) String() string {
	switch c {
	case driverOutputControl:
		return "driverOutputControl"
	case gateDrivingVoltage:
		return "gateDrivingVoltage"
	case sourceDrivingVoltage:
		return "sourceDrivingVoltage"
	case boosterSoftStart:
		return "boosterSoftStart"
	case deepSleepMode:
		return "deepSleepMode"
	case dataEntryMode:
		return "dataEntryMode"
	case swReset:
		return "swReset"
	case hvReadyDetection:
		return "hvReadyDetection"
	case vciDetection:
		return "vciDetection"
	case tempSensorControl:
		return "tempSensorControl"
	case tempSensorWrite:
		return "tempSensorWrite"
	case masterActivation:
		return "masterActivation"
	case displayUpdateControl1:
		return "displayUpdateControl1"
	case displayUpdateControl2:
		return "displayUpdateControl2"
	case writeRAM:
		return "writeRAM"
	case writeRAMRed:
		return "writeRAMRed"
	case readRAM:
		return "readRAM"
	case vcomSense:
		return "vcomSense"
	case vcomSenseDuration:
		return "vcomSenseDuration"
	case writeVcomRegister:
		return "writeVcomRegister"
	case statusBitRead:
		return "statusBitRead"
	case writeLutRegister:
		return "writeLutRegister"
	case setDummyLinePeriod:
		return "setDummyLinePeriod"
	case setGateLineWidth:
		return "setGateLineWidth"
	case borderWaveformControl:
		return "borderWaveformControl"
	case setRamXStartEnd:
		return "setRamXStartEnd"
	case setRamYStartEnd:
		return "setRamYStartEnd"
	case setRamXAddressCounter:
		return "setRamXAddressCounter"
	case setRamYAddressCounter:
		return "setRamYAddressCounter"
	case nop:
		return "nop"
	}
	return "command(unknown)"
}
