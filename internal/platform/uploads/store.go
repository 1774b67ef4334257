package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store guarda archivos subidos (fotos de mascotas, radiografías) en disco
// local bajo un directorio único. Los nombres se regeneran con uuid para no
// pisar archivos entre usuarios.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("uploads: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save persiste el contenido y devuelve el nombre generado (sin directorio).
// Se conserva la extensión original para que el static handler sirva el
// Content-Type correcto.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("uploads: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("uploads: write file: %w", err)
	}
	return name, nil
}

// Remove borra un archivo guardado. Ignora nombres vacíos y archivos
// que ya no existen (el borrado es best-effort para compensaciones).
func (s *Store) Remove(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	// filepath.Base evita que un nombre con ../ escape del directorio.
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("uploads: remove file: %w", err)
	}
	return nil
}
