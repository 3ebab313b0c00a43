package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema: every operation of the CRM API,
// dispatched to the resolver methods.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	estadoPedido := graphql.NewEnum(graphql.EnumConfig{
		Name: "EstadoPedido",
		Values: graphql.EnumValueConfigMap{
			"PENDIENTE":  &graphql.EnumValueConfig{Value: "PENDIENTE"},
			"COMPLETADO": &graphql.EnumValueConfig{Value: "COMPLETADO"},
			"CANCELADO":  &graphql.EnumValueConfig{Value: "CANCELADO"},
		},
	})

	usuarioType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Usuario",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"creado":   &graphql.Field{Type: graphql.String},
		},
	})

	tokenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
		},
	})

	productoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Producto",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.ID},
			"nombre":     &graphql.Field{Type: graphql.String},
			"existencia": &graphql.Field{Type: graphql.Int},
			"precio":     &graphql.Field{Type: graphql.Float},
			"creado":     &graphql.Field{Type: graphql.String},
		},
	})

	clienteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Cliente",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"empresa":  &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"telefono": &graphql.Field{Type: graphql.String},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"creado":   &graphql.Field{Type: graphql.String},
		},
	})

	pedidoGrupoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PedidoGrupo",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"cantidad": &graphql.Field{Type: graphql.Int},
		},
	})

	pedidoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Pedido",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"pedido":   &graphql.Field{Type: graphql.NewList(pedidoGrupoType)},
			"total":    &graphql.Field{Type: graphql.Float},
			"cliente":  &graphql.Field{Type: graphql.ID},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"estado":   &graphql.Field{Type: estadoPedido},
			"creado":   &graphql.Field{Type: graphql.String},
		},
	})

	topClienteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TopCliente",
		Fields: graphql.Fields{
			"total":   &graphql.Field{Type: graphql.Float},
			"cliente": &graphql.Field{Type: clienteType},
		},
	})

	topVendedorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TopVendedor",
		Fields: graphql.Fields{
			"total":    &graphql.Field{Type: graphql.Float},
			"vendedor": &graphql.Field{Type: usuarioType},
		},
	})

	usuarioInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UsuarioInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	autenticarInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AutenticarInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"existencia": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"precio":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	clienteInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ClienteInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	pedidoProductoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"cantidad": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	pedidoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(pedidoProductoInput)},
			"cliente": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"estado":  &graphql.InputObjectFieldConfig{Type: estadoPedido},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"obtenerUsuario": {
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"token": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.GetUser,
			},
			"obtenerProductos": {Type: graphql.NewList(productoType), Resolve: r.GetProducts},
			"obtenerProducto":  {Type: productoType, Args: idArg, Resolve: r.GetProduct},
			"obtenerClientes":  {Type: graphql.NewList(clienteType), Resolve: r.GetClients},
			"obtenerClientesVendedor": {
				Type:    graphql.NewList(clienteType),
				Resolve: r.GetSellerClients,
			},
			"obtenerCliente": {Type: clienteType, Args: idArg, Resolve: r.GetClient},
			"obtenerPedidos": {Type: graphql.NewList(pedidoType), Resolve: r.GetOrders},
			"obtenerPedidosVendedor": {
				Type:    graphql.NewList(pedidoType),
				Resolve: r.GetSellerOrders,
			},
			"obtenerPedido": {Type: pedidoType, Args: idArg, Resolve: r.GetOrder},
			"obtenerPedidosEstado": {
				Type: graphql.NewList(pedidoType),
				Args: graphql.FieldConfigArgument{
					"estado": &graphql.ArgumentConfig{Type: graphql.NewNonNull(estadoPedido)},
				},
				Resolve: r.GetOrdersByStatus,
			},
			"mejoresClientes":   {Type: graphql.NewList(topClienteType), Resolve: r.TopClients},
			"mejoresVendedores": {Type: graphql.NewList(topVendedorType), Resolve: r.TopSellers},
			"buscarProducto": {
				Type: graphql.NewList(productoType),
				Args: graphql.FieldConfigArgument{
					"texto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.SearchProducts,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"nuevoUsuario": {
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usuarioInput)},
				},
				Resolve: r.CreateUser,
			},
			"autenticarUsuario": {
				Type: tokenType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(autenticarInput)},
				},
				Resolve: r.AuthenticateUser,
			},
			"nuevoProducto": {
				Type: productoType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productoInput)},
				},
				Resolve: r.CreateProduct,
			},
			"actualizarProducto": {
				Type: productoType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productoInput)},
				},
				Resolve: r.UpdateProduct,
			},
			"eliminarProducto": {Type: graphql.String, Args: idArg, Resolve: r.DeleteProduct},
			"nuevoCliente": {
				Type: clienteType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clienteInput)},
				},
				Resolve: r.CreateClient,
			},
			"actualizarCliente": {
				Type: clienteType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clienteInput)},
				},
				Resolve: r.UpdateClient,
			},
			"eliminarCliente": {Type: graphql.String, Args: idArg, Resolve: r.DeleteClient},
			"nuevoPedido": {
				Type: pedidoType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(pedidoInput)},
				},
				Resolve: r.CreateOrder,
			},
			"actualizarPedido": {
				Type: pedidoType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(pedidoInput)},
				},
				Resolve: r.UpdateOrder,
			},
			"eliminarPedido": {Type: graphql.String, Args: idArg, Resolve: r.DeleteOrder},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
