package service

import (
	"html"
	"io"
	"strconv"
	"strings"

	"shortgate/system/template/api/dto"
	"shortgate/system/template/internal/model"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// Render 替换模板中的 {{name}} 占位符，取值统一做 HTML 转义，未知占位符原样保留
func Render(tpl *model.Template, vars dto.PageVars) []byte {
	values := map[string]string{
		"code":       vars.Code,
		"host":       vars.Host,
		"reason":     vars.Reason,
		"message":    vars.Message,
		"url":        vars.URL,
		"backup_url": vars.BackupURL,
		"action":     vars.Action,
		"error":      vars.Error,
		"error_code": vars.ErrorCode,
		"asset_base": tpl.AssetBase(),
	}
	if vars.Status > 0 {
		values["status"] = strconv.Itoa(vars.Status)
	} else {
		values["status"] = ""
	}

	out := fasttemplate.ExecuteFuncString(tpl.Body, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		v, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return w.Write([]byte(startTag + tag + endTag))
		}
		return w.Write([]byte(html.EscapeString(v)))
	})
	return []byte(out)
}
