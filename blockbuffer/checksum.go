package blockbuffer

import "github.com/snksoft/crc"

var (
	Crc = crc.NewTable(&crc.Parameters{
		Width:      32,
		Polynomial: 0x04c11db7,
		Init:       0xffffffff,
	})
)

func Checksum(data []byte) uint32 {
	hash := crc.NewHashWithTable(Crc)
	hash.Write(data)
	return hash.CRC32()
}
