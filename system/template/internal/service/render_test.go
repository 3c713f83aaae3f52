package service

import (
	"testing"

	"shortgate/system/template/api/dto"
	"shortgate/system/template/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesAndEscapes(t *testing.T) {
	tpl := &model.Template{
		Body:        `<h1>{{status}}</h1><p>{{ message }}</p><a href="{{url}}">{{code}}</a><img src="{{asset_base}}/logo.png">`,
		AssetPrefix: "brand",
	}

	out := Render(tpl, dto.PageVars{
		Status:  410,
		Message: "<b>已过期</b>",
		URL:     "https://example.com/?a=1&b=2",
		Code:    `x"y`,
	})

	assert.Equal(t,
		`<h1>410</h1><p>&lt;b&gt;已过期&lt;/b&gt;</p><a href="https://example.com/?a=1&amp;b=2">x&#34;y</a><img src="/assets/brand/logo.png">`,
		string(out))
}

func TestRender_ErrorCode(t *testing.T) {
	tpl := &model.Template{Body: "{{status}} {{error_code}}"}

	assert.Equal(t, "410 LINK_EXPIRED", string(Render(tpl, dto.PageVars{Status: 410, ErrorCode: "LINK_EXPIRED"})))
	assert.Equal(t, "200 ", string(Render(tpl, dto.PageVars{Status: 200})))
}

func TestRender_KeepsUnknownPlaceholders(t *testing.T) {
	tpl := &model.Template{Body: "{{code}} {{unknown}} {{host}}"}

	out := Render(tpl, dto.PageVars{Code: "abc"})

	assert.Equal(t, "abc {{unknown}} ", string(out))
}

func TestRender_Deterministic(t *testing.T) {
	tpl := &model.Template{Body: "{{status}}:{{code}}:{{host}}"}
	vars := dto.PageVars{Status: 404, Code: "nope"}

	assert.Equal(t, Render(tpl, vars), Render(tpl, vars))
	assert.Equal(t, "404:nope:", string(Render(tpl, vars)))
}
