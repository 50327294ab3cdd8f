// Package api 處理 HTTP 請求路由。
//
// 這個包組裝 gin 引擎：安裝中間件、在 /api 下註冊健康檢查與乘法路由，
// 並為不存在的路徑回應 404。
package api
