package pets

import (
	"context"
	"strings"
)

// Lookup devuelve el documento crudo, sin expandir referencias.
// Lo usan los otros módulos (health, adoptions, etc.) para expandir su
// propia referencia pet sin ciclos de imports.
func (s *Service) Lookup(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}
