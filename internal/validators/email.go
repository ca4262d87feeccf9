package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// DomainResolver é o pedaço de *net.Resolver que a checagem usa.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker aceita o domínio com registro MX ou, na falta dele,
// com algum endereço A/AAAA. Falha de DNS conta como domínio inválido.
func EmailDomainChecker(r DomainResolver, timeout time.Duration) func(email string) bool {
	return func(email string) bool {
		domain := emailDomain(email)
		if domain == "" {
			return false
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
			return true
		}
		ips, err := r.LookupIPAddr(ctx, domain)
		return err == nil && len(ips) > 0
	}
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(email[at+1:]), "."))
}
