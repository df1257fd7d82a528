package analyzer

import (
	"slices"

	"github.com/yeisme/projscope/pkg/models"
	"github.com/yeisme/projscope/pkg/utils/walk"
)

// ConfigDescriptions 已知配置/清单文件名到说明文字的映射
var ConfigDescriptions = map[string]string{
	"package.json":       "Node.js dependencies and scripts",
	"tsconfig.json":      "TypeScript configuration",
	"webpack.config.js":  "Webpack bundler configuration",
	"vite.config.js":     "Vite bundler configuration",
	"next.config.js":     "Next.js framework configuration",
	"requirements.txt":   "Python dependencies",
	"pyproject.toml":     "Python project metadata and dependencies",
	"setup.py":           "Python package setup",
	"Pipfile":            "Pipenv dependencies",
	"Cargo.toml":         "Rust dependencies and package info",
	"go.mod":             "Go module dependencies",
	"pom.xml":            "Maven dependencies",
	"build.gradle":       "Gradle build configuration",
	"Gemfile":            "Ruby dependencies",
	"composer.json":      "PHP dependencies",
	".env":               "Environment variables",
	".env.example":       "Example environment variables",
	"docker-compose.yml": "Docker services configuration",
	"Dockerfile":         "Docker image definition",
	".eslintrc":          "ESLint code quality rules",
	".prettierrc":        "Prettier code formatting",
	"jest.config.js":     "Jest testing framework",
	"pytest.ini":         "Pytest configuration",
	"README.md":          "Project documentation",
}

// ConfigNames 返回按字典序排列的配置文件名
func ConfigNames() []string {
	names := make([]string, 0, len(ConfigDescriptions))
	for n := range ConfigDescriptions {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// catalogConfigs 只扫描根目录及其一级子目录，按文件名精确匹配，不检查文件内容
func (a *analysis) catalogConfigs() models.ConfigCatalog {
	catalog := models.ConfigCatalog{}
	w := &walk.Walker{
		MaxDepth: 1,
		Skip:     a.excluded,
		Prune:    ignoredDir,
		Visit: func(e walk.Entry) error {
			if e.IsDir {
				return nil
			}
			if desc, ok := ConfigDescriptions[e.Name]; ok {
				catalog[e.Rel] = desc
			}
			return nil
		},
		OnError: a.onWalkError,
	}
	_ = w.Walk(a.root)
	return catalog
}
