package certificates

import "github.com/jhoicas/fumimanager/internal/domain/entity"

// DocumentEncoder genera el documento legible por máquina de un certificado.
type DocumentEncoder interface {
	EncodeCertificate(c entity.Certificate) ([]byte, error)
}
