package validators

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx      map[string][]*net.MX
	ips     map[string][]net.IPAddr
	queried []string
}

func (r *fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	r.queried = append(r.queried, name)
	if mx, ok := r.mx[name]; ok {
		return mx, nil
	}
	return nil, errors.New("no such host")
}

func (r *fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if ips, ok := r.ips[host]; ok {
		return ips, nil
	}
	return nil, errors.New("no such host")
}

func TestEmailDomainChecker(t *testing.T) {
	r := &fakeResolver{
		mx:  map[string][]*net.MX{"correo.co": {{Host: "mx.correo.co.", Pref: 10}}},
		ips: map[string][]net.IPAddr{"solo-a.co": {{IP: net.IPv4(10, 0, 0, 1)}}},
	}
	check := EmailDomainChecker(r, time.Second)

	assert.True(t, check("carla@Correo.CO"))
	assert.True(t, check("carla@solo-a.co"))
	assert.False(t, check("carla@inexistente.co"))
	assert.Equal(t, []string{"correo.co", "solo-a.co", "inexistente.co"}, r.queried)
}

func TestEmailDomainChecker_MalformedSkipsLookup(t *testing.T) {
	r := &fakeResolver{}
	check := EmailDomainChecker(r, time.Second)

	assert.False(t, check("sin-arroba"))
	assert.False(t, check("carla@"))
	assert.False(t, check("carla@ "))
	assert.Empty(t, r.queried)
}
