package elefren

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SaveData writes data to w as TOML.
func SaveData(w io.Writer, data Data) error {
	return toml.NewEncoder(w).Encode(data)
}

// LoadData reads TOML-encoded credentials from r.
func LoadData(r io.Reader) (Data, error) {
	var data Data
	if err := toml.NewDecoder(r).Decode(&data); err != nil {
		return Data{}, err
	}
	return data, nil
}

// SaveDataFile writes data as TOML to the file at path, creating or
// truncating it.
func SaveDataFile(path string, data Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SaveData(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadDataFile reads TOML-encoded credentials from the file at path.
func LoadDataFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return LoadData(f)
}

// DataFromEnv assembles credentials from the ELEFREN_BASE, ELEFREN_CLIENT_ID,
// ELEFREN_CLIENT_SECRET, ELEFREN_REDIRECT and ELEFREN_TOKEN environment
// variables. Unset variables yield empty fields.
func DataFromEnv() Data {
	return Data{
		Base:         os.Getenv("ELEFREN_BASE"),
		ClientID:     os.Getenv("ELEFREN_CLIENT_ID"),
		ClientSecret: os.Getenv("ELEFREN_CLIENT_SECRET"),
		Redirect:     os.Getenv("ELEFREN_REDIRECT"),
		Token:        os.Getenv("ELEFREN_TOKEN"),
	}
}
