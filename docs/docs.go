// Package docs registra la especificación OpenAPI de la API (formato swag).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/produccion": {
            "get": {
                "tags": [
                    "produccion"
                ],
                "summary": "Listar producciones",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductionListResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "desde",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "hasta",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "máx 100",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "desplazamiento",
                        "name": "offset",
                        "in": "query"
                    }
                ]
            }
        },
        "/api/produccion/validar-stock": {
            "post": {
                "tags": [
                    "produccion"
                ],
                "summary": "Validar stock para una receta",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StockValidationResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ValidateStockRequest"
                        }
                    }
                ]
            }
        },
        "/api/produccion/ejecutar": {
            "post": {
                "tags": [
                    "produccion"
                ],
                "summary": "Ejecutar producción",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductionResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ExecuteProductionRequest"
                        }
                    }
                ]
            }
        },
        "/api/produccion/trazabilidad/{id}": {
            "get": {
                "tags": [
                    "produccion"
                ],
                "summary": "Trazabilidad de una producción",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductionTraceResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de producción",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/ventas/registrar": {
            "post": {
                "tags": [
                    "ventas"
                ],
                "summary": "Registrar venta",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SaleResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterSaleRequest"
                        }
                    }
                ]
            }
        },
        "/api/ventas/sugerencias-descuento": {
            "get": {
                "tags": [
                    "ventas"
                ],
                "summary": "Sugerencias de descuento por antigüedad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DiscountSuggestionsResponse"
                        }
                    }
                }
            }
        },
        "/api/ventas/{id}": {
            "get": {
                "tags": [
                    "ventas"
                ],
                "summary": "Detalle de venta",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SaleResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de venta",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/ventas/{id}/anular": {
            "post": {
                "tags": [
                    "ventas"
                ],
                "summary": "Anular venta",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SaleResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de venta",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.CancelSaleRequest"
                        }
                    }
                ]
            }
        },
        "/api/ventas/{id}/comprobante": {
            "get": {
                "tags": [
                    "ventas"
                ],
                "summary": "Comprobante PDF de la venta",
                "produces": [
                    "application/pdf"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de venta",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/ingresos": {
            "post": {
                "tags": [
                    "ingresos"
                ],
                "summary": "Registrar ingreso de insumos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateReceiptRequest"
                        }
                    }
                ]
            }
        },
        "/api/ingresos/{id}/completar": {
            "post": {
                "tags": [
                    "ingresos"
                ],
                "summary": "Completar ingreso",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de ingreso",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReceiptActionRequest"
                        }
                    }
                ]
            }
        },
        "/api/ingresos/{id}/anular": {
            "post": {
                "tags": [
                    "ingresos"
                ],
                "summary": "Anular ingreso",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de ingreso",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReceiptActionRequest"
                        }
                    }
                ]
            }
        },
        "/api/insumos/{id}/lotes": {
            "get": {
                "tags": [
                    "insumos"
                ],
                "summary": "Lotes activos de un insumo en orden FEFO",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LotPreviewResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de insumo",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/insumos/{id}/kardex": {
            "get": {
                "tags": [
                    "insumos"
                ],
                "summary": "Kardex de un insumo",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MaterialKardexResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de insumo",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "desde",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "hasta",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "máx 100",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "desplazamiento",
                        "name": "offset",
                        "in": "query"
                    }
                ]
            }
        },
        "/api/insumos/{id}/conciliacion": {
            "get": {
                "tags": [
                    "insumos"
                ],
                "summary": "Conciliación lotes vs kardex de un insumo",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BalanceCheckResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de insumo",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/productos/{id}/kardex": {
            "get": {
                "tags": [
                    "productos"
                ],
                "summary": "Kardex de un producto terminado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductKardexResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de producto",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "desde",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "hasta",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "máx 100",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "desplazamiento",
                        "name": "offset",
                        "in": "query"
                    }
                ]
            }
        }
    },
    "definitions": {
        "dto.BalanceCheckResponse": {
            "type": "object",
            "properties": {
                "id_insumo": {
                    "type": "string"
                },
                "total_lotes": {
                    "type": "number"
                },
                "total_kardex": {
                    "type": "number"
                },
                "diferencia": {
                    "type": "number"
                },
                "consistente": {
                    "type": "boolean"
                }
            }
        },
        "dto.CancelSaleRequest": {
            "type": "object",
            "properties": {
                "id_user": {
                    "type": "string"
                }
            }
        },
        "dto.CreateReceiptRequest": {
            "type": "object",
            "properties": {
                "id_proveedor": {
                    "type": "string"
                },
                "estado": {
                    "type": "string",
                    "enum": [
                        "PENDIENTE",
                        "COMPLETADO"
                    ]
                },
                "fecha_ingreso": {
                    "type": "string",
                    "format": "date-time"
                },
                "id_user": {
                    "type": "string"
                },
                "observaciones": {
                    "type": "string"
                },
                "detalles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ReceiptLineRequest"
                    }
                }
            },
            "required": [
                "id_user",
                "detalles"
            ]
        },
        "dto.DiscountSuggestionDTO": {
            "type": "object",
            "properties": {
                "id_producto": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "stock_actual": {
                    "type": "number"
                },
                "precio": {
                    "type": "number"
                },
                "ultima_produccion": {
                    "type": "string",
                    "format": "date-time"
                },
                "dias": {
                    "type": "integer"
                },
                "descuento_sugerido_pct": {
                    "type": "integer"
                },
                "precio_sugerido": {
                    "type": "number"
                }
            }
        },
        "dto.DiscountSuggestionsResponse": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "sugerencias": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.DiscountSuggestionDTO"
                    }
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {}
            }
        },
        "dto.ExecuteProductionRequest": {
            "type": "object",
            "properties": {
                "id_receta": {
                    "type": "string"
                },
                "cantidad_batch": {
                    "type": "number"
                },
                "id_user": {
                    "type": "string"
                },
                "observaciones": {
                    "type": "string"
                }
            },
            "required": [
                "id_receta",
                "id_user"
            ]
        },
        "dto.IngredientCheckDTO": {
            "type": "object",
            "properties": {
                "id_insumo": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "requerido": {
                    "type": "number"
                },
                "disponible": {
                    "type": "number"
                },
                "suficiente": {
                    "type": "boolean"
                }
            }
        },
        "dto.LotConsumptionDTO": {
            "type": "object",
            "properties": {
                "numero_movimiento": {
                    "type": "string"
                },
                "id_lote": {
                    "type": "string"
                },
                "id_insumo": {
                    "type": "string"
                },
                "nombre_insumo": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "number"
                },
                "cantidad_anterior": {
                    "type": "number"
                },
                "cantidad_nueva": {
                    "type": "number"
                },
                "costo_unitario": {
                    "type": "number"
                }
            }
        },
        "dto.LotDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "id_ingreso": {
                    "type": "string"
                },
                "id_insumo": {
                    "type": "string"
                },
                "cantidad_recibida": {
                    "type": "number"
                },
                "cantidad_restante": {
                    "type": "number"
                },
                "fecha_vencimiento": {
                    "type": "string",
                    "format": "date-time"
                },
                "dias_para_vencer": {
                    "type": "integer"
                },
                "costo_unitario": {
                    "type": "number"
                }
            }
        },
        "dto.LotPreviewResponse": {
            "type": "object",
            "properties": {
                "id_insumo": {
                    "type": "string"
                },
                "disponible": {
                    "type": "number"
                },
                "lotes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LotDTO"
                    }
                }
            }
        },
        "dto.MaterialKardexResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MaterialMovementDTO"
                    }
                },
                "page": {
                    "$ref": "#/definitions/dto.PageResponse"
                }
            }
        },
        "dto.MaterialMovementDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "id_insumo": {
                    "type": "string"
                },
                "id_lote": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "number"
                },
                "cantidad_anterior": {
                    "type": "number"
                },
                "cantidad_nueva": {
                    "type": "number"
                },
                "costo_unitario": {
                    "type": "number"
                },
                "documento_tipo": {
                    "type": "string"
                },
                "documento_id": {
                    "type": "string"
                },
                "motivo": {
                    "type": "string"
                },
                "id_user": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.PageResponse": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.ProductKardexResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ProductMovementDTO"
                    }
                },
                "page": {
                    "$ref": "#/definitions/dto.PageResponse"
                }
            }
        },
        "dto.ProductMovementDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "id_producto": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "number"
                },
                "cantidad_anterior": {
                    "type": "number"
                },
                "cantidad_nueva": {
                    "type": "number"
                },
                "documento_tipo": {
                    "type": "string"
                },
                "documento_id": {
                    "type": "string"
                },
                "motivo": {
                    "type": "string"
                },
                "id_user": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ProductionListResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ProductionRunDTO"
                    }
                },
                "page": {
                    "$ref": "#/definitions/dto.PageResponse"
                }
            }
        },
        "dto.ProductionResponse": {
            "type": "object",
            "properties": {
                "mensaje": {
                    "type": "string"
                },
                "id_produccion": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "id_producto": {
                    "type": "string"
                },
                "cantidad_producida": {
                    "type": "number"
                },
                "costo_total": {
                    "type": "number"
                },
                "costo_unitario": {
                    "type": "number"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ProductionRunDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "id_receta": {
                    "type": "string"
                },
                "id_producto": {
                    "type": "string"
                },
                "cantidad_batch": {
                    "type": "number"
                },
                "cantidad_producida": {
                    "type": "number"
                },
                "costo_total": {
                    "type": "number"
                },
                "id_user": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ProductionTraceResponse": {
            "type": "object",
            "properties": {
                "id_produccion": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "id_receta": {
                    "type": "string"
                },
                "id_producto": {
                    "type": "string"
                },
                "cantidad_batch": {
                    "type": "number"
                },
                "cantidad_producida": {
                    "type": "number"
                },
                "costo_total": {
                    "type": "number"
                },
                "id_user": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                },
                "consumos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LotConsumptionDTO"
                    }
                },
                "credito_producto": {
                    "$ref": "#/definitions/dto.ProductMovementDTO"
                }
            }
        },
        "dto.ReceiptActionRequest": {
            "type": "object",
            "properties": {
                "id_user": {
                    "type": "string"
                }
            },
            "required": [
                "id_user"
            ]
        },
        "dto.ReceiptLineRequest": {
            "type": "object",
            "properties": {
                "id_insumo": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "number"
                },
                "fecha_vencimiento": {
                    "type": "string",
                    "format": "date-time"
                },
                "costo_unitario": {
                    "type": "number"
                }
            },
            "required": [
                "id_insumo"
            ]
        },
        "dto.ReceiptResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "lotes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LotDTO"
                    }
                },
                "movimientos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.RegisterSaleRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SaleItemRequest"
                    }
                },
                "metodo_pago": {
                    "type": "string",
                    "enum": [
                        "EFECTIVO",
                        "TARJETA",
                        "TRANSFERENCIA"
                    ]
                },
                "observaciones": {
                    "type": "string"
                },
                "id_user": {
                    "type": "string"
                }
            },
            "required": [
                "items",
                "metodo_pago"
            ]
        },
        "dto.SaleItemRequest": {
            "type": "object",
            "properties": {
                "id_producto": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "number"
                },
                "precio_unitario": {
                    "type": "number"
                },
                "descuento_pct": {
                    "type": "number"
                }
            },
            "required": [
                "id_producto"
            ]
        },
        "dto.SaleLineDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "id_producto": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "number"
                },
                "precio_unitario": {
                    "type": "number"
                },
                "descuento_pct": {
                    "type": "number"
                },
                "subtotal": {
                    "type": "number"
                }
            }
        },
        "dto.SaleResponse": {
            "type": "object",
            "properties": {
                "id_venta": {
                    "type": "string"
                },
                "numero": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "metodo_pago": {
                    "type": "string"
                },
                "total": {
                    "type": "number"
                },
                "observaciones": {
                    "type": "string"
                },
                "id_user": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                },
                "fecha_anulacion": {
                    "type": "string",
                    "format": "date-time"
                },
                "detalles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SaleLineDTO"
                    }
                }
            }
        },
        "dto.StockValidationResponse": {
            "type": "object",
            "properties": {
                "id_receta": {
                    "type": "string"
                },
                "cantidad_batch": {
                    "type": "number"
                },
                "suficiente": {
                    "type": "boolean"
                },
                "ingredientes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.IngredientCheckDTO"
                    }
                }
            }
        },
        "dto.ValidateStockRequest": {
            "type": "object",
            "properties": {
                "id_receta": {
                    "type": "string"
                },
                "cantidad_batch": {
                    "type": "number"
                }
            },
            "required": [
                "id_receta"
            ]
        }
    }
}`

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Panadería API",
	Description:      "Inventario por lotes FEFO, producción por recetas y ventas de producto terminado.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
