package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board name passed to ForBoard
// Val: raw YAML for that board
// -----------------------------------------------------------------------------

const cfgPico = `
console:
  baud: 115200
  crlf: true
  banner: "SerialMenu - pico"
  loop_ms: 100
serial:
  address: uart0
led:
  enabled: true
  pin: -1
labels:
  source: flash
  offset: 1572864
`

const cfgHost = `
console:
  baud: 9600
  banner: "SerialMenu - host"
  loop_ms: 100
serial:
  timeout_ms: 50
led:
  enabled: true
labels:
  source: inline
`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
	"host": []byte(cfgHost),
}
