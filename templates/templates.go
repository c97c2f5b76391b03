package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"

	"stroke_risk/features"
)

//go:embed index.html result.html
var embedded embed.FS

// SymptomOption 表单上的一个症状复选框
type SymptomOption struct {
	Key   string
	Label string
}

// IndexView 表单页数据
type IndexView struct {
	Symptoms []SymptomOption
}

// ResultView 结果页数据
type ResultView struct {
	RiskLevel       string
	Recommendations []string
}

// Renderer 已解析的表单页与结果页模板
type Renderer struct {
	index  *template.Template
	result *template.Template
}

// New 从 dir 加载 index.html 和 result.html，dir 为空时使用内置模板
func New(dir string) (*Renderer, error) {
	var fsys fs.FS = embedded
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	index, err := template.ParseFS(fsys, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	result, err := template.ParseFS(fsys, "result.html")
	if err != nil {
		return nil, fmt.Errorf("parse result template: %w", err)
	}
	return &Renderer{index: index, result: result}, nil
}

// RenderIndex 渲染输入表单
func (r *Renderer) RenderIndex(w io.Writer) error {
	return render(w, r.index, IndexView{Symptoms: symptomOptions()})
}

// RenderResult 渲染结果页
func (r *Renderer) RenderResult(w io.Writer, view ResultView) error {
	return render(w, r.result, view)
}

// 先渲染到缓冲区，模板出错时不输出半页内容
func render(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func symptomOptions() []SymptomOption {
	symptoms := features.Symptoms()
	out := make([]SymptomOption, 0, len(symptoms))
	for _, f := range symptoms {
		out = append(out, SymptomOption{Key: f.Key, Label: label(f.Key)})
	}
	return out
}

// label chest_pain -> Chest pain
func label(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
