package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Store  StoreConfig
	Render RenderConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig almacén clave/valor local del historial.
type StoreConfig struct {
	Dir string // directorio de datos del dispositivo
}

// RenderConfig rasterización del recibo.
type RenderConfig struct {
	// FontPath ruta a una fuente TTF/OTF con glifos árabes (ej. Amiri).
	// Vacío usa la fuente bitmap de respaldo, sin glifos árabes reales.
	FontPath string
	// WidthPx ancho lógico de la superficie: 794 px = ancho A4 a 96 DPI.
	WidthPx int
	// Scale factor de sobremuestreo para nitidez de la salida.
	Scale int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, STORE_DIR, RENDER_FONT_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "wasl-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Dir: getString(v, "STORE_DIR", "./data"),
		},
		Render: RenderConfig{
			FontPath: getString(v, "RENDER_FONT_PATH", ""),
			WidthPx:  getInt(v, "RENDER_WIDTH_PX", 794),
			Scale:    getInt(v, "RENDER_SCALE", 3),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
