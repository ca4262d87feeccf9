package access

// Principal é o usuário autenticado da requisição, passado explicitamente
// a cada serviço. nil significa requisição anônima.
type Principal struct {
	UserID uint
	Name   string
	Role   Role
	Active bool
}

func (p *Principal) IsManager() bool {
	return p != nil && p.Role == RoleGeneralManager
}
