package procuracao

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const DefaultFolderPerm = 0777

const filePrefix = "02_Procuracao_Kit_Consignado_"

// BaseName builds "02_Procuracao_Kit_Consignado_Nome_Sobrenome_Autor".
func BaseName(fullName string) string {
	return fmt.Sprintf("%s%s_Autor", filePrefix, Slug(fullName))
}

// OutputPath places the file for fullName under dir with the given
// extension. A leading dot on ext is ignored.
func OutputPath(dir, fullName, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s", BaseName(fullName), strings.TrimPrefix(ext, ".")))
}

// PrepareFolders creates every folder (and its parents) if missing.
func PrepareFolders(folders ...string) error {
	for _, folder := range folders {
		if err := os.MkdirAll(folder, DefaultFolderPerm); err != nil {
			return err
		}
	}
	return nil
}
