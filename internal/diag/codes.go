package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Графовые (разрешение импортов)
	GraphInfo                  Code = 1000
	GraphUnresolvedImport      Code = 1001
	GraphEntryPointImport      Code = 1002
	GraphUnregisteredComponent Code = 1003

	// Манифестные
	ManifestInfo          Code = 2000
	ManifestMissingFile   Code = 2001
	ManifestEmptyFile     Code = 2002
	ManifestMissingExport Code = 2003
	ManifestStaleSource   Code = 2004

	// Контрактные (структура UI-компонентов)
	ContractInfo             Code = 3000
	ContractMissingBaseClass Code = 3001
	ContractMissingShadow    Code = 3002
	ContractMissingLifecycle Code = 3003
	ContractMissingExport    Code = 3004

	// Документ входа
	DocInfo             Code = 4000
	DocMissingEntry     Code = 4001
	DocStaleEntry       Code = 4002
	DocMissingComponent Code = 4003
)

func (c Code) String() string {
	switch {
	case c >= 4000:
		return fmt.Sprintf("DOC%04d", uint16(c))
	case c >= 3000:
		return fmt.Sprintf("CON%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("MAN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("GRA%04d", uint16(c))
	}
	return fmt.Sprintf("UNK%04d", uint16(c))
}
