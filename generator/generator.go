package generator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"net"

	"github.com/bwmarrin/snowflake"
)

func IDbyIP(ip string) uint32 {
	var id uint32
	binary.Read(bytes.NewBuffer(net.ParseIP(ip).To4()), binary.BigEndian, &id)
	return id
}

// NewNode returns a snowflake node numbered after ip, so that two hosts
// writing to the same database draw distinct run IDs. An empty or
// unparsable ip yields node 0.
func NewNode(ip string) (*snowflake.Node, error) {
	return snowflake.NewNode(int64(IDbyIP(ip) % (1 << snowflake.NodeBits)))
}

// LocalIP returns the first non-loopback IPv4 address of the host.
func LocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ipNet.IP.To4() != nil {
				return ipNet.IP.String(), nil
			}
		}
	}

	return "", errors.New("no local ip")
}
