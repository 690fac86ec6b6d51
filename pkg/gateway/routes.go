package gateway

import "net/http"

// Routes returns the complete route table. New domains are added by
// appending descriptors here, never by writing new forwarding code.
func Routes(s Services) []Route {
	var routes []Route
	routes = append(routes, usuarioRoutes(s.Usuario)...)
	routes = append(routes, rolRoutes(s.Usuario)...)
	routes = append(routes, permisoRoutes(s.Usuario)...)
	routes = append(routes, rolPermisoRoutes(s.Usuario)...)
	routes = append(routes, usuarioRolRoutes(s.Usuario)...)
	routes = append(routes, productoRoutes(s.Producto)...)
	routes = append(routes, marcaRoutes(s.Producto)...)
	routes = append(routes, categoriaRoutes(s.Producto)...)
	routes = append(routes, colorRoutes(s.Producto)...)
	routes = append(routes, tallaRoutes(s.Producto)...)
	routes = append(routes, productoColorRoutes(s.Producto)...)
	routes = append(routes, productoTallaRoutes(s.Producto)...)
	routes = append(routes, deseoRoutes(s.Producto)...)
	routes = append(routes, promocionRoutes(s.Producto)...)
	routes = append(routes, invocarRoutes(s.Producto)...)
	routes = append(routes, cartRoutes(s.Wishlist)...)
	routes = append(routes, wishlistRoutes(s.Wishlist)...)
	routes = append(routes, envioRoutes(s.Envios)...)
	routes = append(routes, envioProductoRoutes(s.Envios)...)
	routes = append(routes, estadoEnvioRoutes(s.Envios)...)
	routes = append(routes, tarifaEnvioRoutes(s.Envios)...)
	routes = append(routes, stripeRoutes(s.Stripe)...)
	return routes
}

func usuarioRoutes(s Service) []Route {
	const prefix = "usuario"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/login", Service: s,
			Path: "/auth-service/usuario/login", Body: BodyJSON, Action: "iniciar sesión"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/register", Service: s,
			Path: "/auth-service/usuario/register", Body: BodyJSON, Action: "registrar usuario"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/register-admin", Service: s,
			Path: "/auth-service/usuario/register-admin", Auth: true, Permissions: []string{"asignar_roles"},
			Body: BodyJSON, Action: "registrar administrador"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/logout", Service: s,
			Path: "/auth-service/usuario/logout", Auth: true, Permissions: []string{"logout_usuario"},
			Body: BodyJSON, Action: "cerrar sesión"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/refreshToken", Service: s,
			Path: "/auth-service/usuario/refreshToken", Body: BodyJSON, Action: "refrescar el token"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/forgot-password", Service: s,
			Path: "/auth-service/usuario/forgot-password", Body: BodyJSON, Action: "enviar el correo de recuperación"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/reset-password", Service: s,
			Path: "/auth-service/usuario/reset-password", Body: BodyJSON, Action: "restablecer la contraseña"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/usuario/{id}", Auth: true, Permissions: []string{"actualizar_usuario"},
			Body: BodyJSON, Action: "actualizar el usuario"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/deactivateAccount/{id}", Service: s,
			Path: "/auth-service/usuario/deactivateAccount/{id}", Auth: true, Permissions: []string{"desactivar_cuenta"},
			Body: BodyJSON, Action: "desactivar la cuenta"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/findOne/{id}", Service: s,
			Path: "/auth-service/usuario/findOne/{id}", Auth: true, Permissions: []string{"ver_usuario"},
			Action: "obtener el usuario"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/findAll", Service: s,
			Path: "/auth-service/usuario/findAll", Auth: true, Permissions: []string{"ver_usuarios"},
			Action: "obtener los usuarios"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/findAllActivos", Service: s,
			Path: "/auth-service/usuario/findAllActivos", Auth: true, Permissions: []string{"ver_usuarios_activos"},
			Action: "obtener los usuarios activos"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/usuario/{id}", Auth: true, Permissions: []string{"eliminar_usuario"},
			Action: "eliminar el usuario"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/auth/google", Service: s,
			Path: "/auth-service/usuario/auth/google", Special: SpecialRedirect,
			Action: "iniciar sesión con Google"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/auth/google/callback", Service: s,
			Path: "/auth-service/usuario/auth/google/callback",
			Action: "completar el inicio de sesión con Google"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Auth: true, Special: SpecialWhoAmI, Action: "verificar el token"},
	}
}

func rolRoutes(s Service) []Route {
	const prefix = "rol"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/rol", Auth: true, Permissions: []string{"asignar_roles"},
			Body: BodyJSON, Action: "crear el rol"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/rol", Auth: true, Permissions: []string{"ver_roles"},
			Action: "obtener los roles"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/rol/{id}", Auth: true, Permissions: []string{"ver_rol"},
			Action: "obtener el rol"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/rol/{id}", Auth: true, Permissions: []string{"actualizar_rol"},
			Body: BodyJSON, Action: "actualizar el rol"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/rol/{id}", Auth: true, Permissions: []string{"eliminar_rol"},
			Action: "eliminar el rol"},
	}
}

func permisoRoutes(s Service) []Route {
	const prefix = "permiso"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/permiso", Auth: true, Permissions: []string{"asignar_permisos"},
			Body: BodyJSON, Action: "crear el permiso"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/permiso", Auth: true, Permissions: []string{"ver_permisos"},
			Action: "obtener los permisos"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/permiso/{id}", Auth: true, Permissions: []string{"ver_permiso"},
			Action: "obtener el permiso"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/permiso/{id}", Auth: true, Permissions: []string{"actualizar_permiso"},
			Body: BodyJSON, Action: "actualizar el permiso"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/auth-service/permiso/{id}", Auth: true, Permissions: []string{"eliminar_permiso"},
			Action: "eliminar el permiso"},
	}
}

func rolPermisoRoutes(s Service) []Route {
	const prefix = "rol-permiso"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/rol-permiso/", Auth: true,
			Permissions: []string{"asignar_permisos", "asignar_roles"},
			Body:        BodyJSON, Action: "asignar el permiso al rol"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/many", Service: s,
			Path: "/auth-service/rol-permiso/many", Auth: true,
			Permissions: []string{"asignar_permisos", "asignar_roles"},
			Body:        BodyJSON, Action: "asignar varios permisos al rol"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/rol-permiso/", Auth: true,
			Permissions: []string{"ver_roles", "ver_permisos"},
			Action:      "obtener las asignaciones de permisos"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{rolId}/{permisoId}", Service: s,
			Path: "/auth-service/rol-permiso/{rolId}/{permisoId}", Auth: true,
			Permissions: []string{"ver_permiso", "ver_rol"},
			Action:      "obtener la asignación de permiso"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{rolId}/{permisoId}", Service: s,
			Path: "/auth-service/rol-permiso/{rolId}/{permisoId}", Auth: true,
			Permissions: []string{"eliminar_rol", "eliminar_permiso"},
			Action:      "eliminar la asignación de permiso"},
	}
}

func usuarioRolRoutes(s Service) []Route {
	const prefix = "usuario-rol"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/usuario-rol/", Auth: true, Permissions: []string{"asignar_roles"},
			Body: BodyJSON, Action: "asignar el rol al usuario"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/auth-service/usuario-rol/", Auth: true,
			Permissions: []string{"ver_roles", "ver_usuarios"},
			Action:      "obtener las asignaciones de roles"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{usuarioId}/{rolId}", Service: s,
			Path: "/auth-service/usuario-rol/{usuarioId}/{rolId}", Auth: true,
			Permissions: []string{"ver_rol", "ver_usuario"},
			Action:      "obtener la asignación de rol"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{usuarioId}/{rolId}", Service: s,
			Path: "/auth-service/usuario-rol/{usuarioId}/{rolId}", Auth: true,
			Permissions: []string{"eliminar_rol", "eliminar_usuario"},
			Action:      "eliminar la asignación de rol"},
	}
}

func productoRoutes(s Service) []Route {
	const prefix = "producto"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/producto", Auth: true, Permissions: []string{"crear_productos"},
			Body: BodyJSON, Action: "crear el producto"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/producto", Auth: true, Permissions: []string{"ver_productos"},
			Action: "obtener los productos"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto/{id}", Auth: true, Permissions: []string{"ver_productos"},
			Action: "obtener el producto"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto/{id}", Auth: true, Permissions: []string{"editar_productos"},
			Body: BodyJSON, Action: "actualizar el producto"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto/{id}", Auth: true, Permissions: []string{"eliminar_productos"},
			Action: "eliminar el producto"},
	}
}

func marcaRoutes(s Service) []Route {
	const prefix = "marca"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/marca", Auth: true, Permissions: []string{"crear_marca"},
			Body: BodyJSON, Action: "crear la marca"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/marca", Auth: true, Permissions: []string{"ver_marcas"},
			Action: "obtener las marcas"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/marca/{id}", Auth: true, Permissions: []string{"ver_marca"},
			Action: "obtener la marca"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/marca/{id}", Auth: true, Permissions: []string{"actualizar_marca"},
			Body: BodyJSON, Action: "actualizar la marca"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/marca/{id}", Auth: true, Permissions: []string{"eliminar_marca"},
			Action: "eliminar la marca"},
	}
}

func categoriaRoutes(s Service) []Route {
	const prefix = "categoria"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/categoria", Auth: true, Permissions: []string{"crear_categoria"},
			Body: BodyJSON, Action: "crear la categoría"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/categoria", Auth: true, Permissions: []string{"ver_categorias"},
			Action: "obtener las categorías"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/categoria/{id}", Auth: true, Permissions: []string{"ver_categoria"},
			Action: "obtener la categoría"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/categoria/{id}", Auth: true, Permissions: []string{"actualizar_categoria"},
			Body: BodyJSON, Action: "actualizar la categoría"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/categoria/{id}", Auth: true, Permissions: []string{"eliminar_categoria"},
			Action: "eliminar la categoría"},
	}
}

// colorRoutes has no delete: colors referenced by product variants are
// never removed through the gateway.
func colorRoutes(s Service) []Route {
	const prefix = "color"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/color", Auth: true, Permissions: []string{"agregar_color"},
			Body: BodyJSON, Action: "agregar el color"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/color", Auth: true, Permissions: []string{"obtener_colores"},
			Action: "obtener los colores"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{color_id}", Service: s,
			Path: "/producto-service/color/{color_id}", Auth: true, Permissions: []string{"obtener_color"},
			Action: "obtener el color"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{color_id}", Service: s,
			Path: "/producto-service/color/{color_id}", Auth: true, Permissions: []string{"actualizar_color"},
			Body: BodyJSON, Action: "actualizar el color"},
	}
}

func tallaRoutes(s Service) []Route {
	const prefix = "talla"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/talla", Auth: true, Permissions: []string{"agregar_talla"},
			Body: BodyJSON, Action: "agregar la talla"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/talla", Auth: true, Permissions: []string{"ver_tallas"},
			Action: "obtener las tallas"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{talla_id}", Service: s,
			Path: "/producto-service/talla/{talla_id}", Auth: true, Permissions: []string{"ver_tallas"},
			Action: "obtener la talla"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{talla_id}", Service: s,
			Path: "/producto-service/talla/{talla_id}", Auth: true, Permissions: []string{"actualizar_talla"},
			Body: BodyJSON, Action: "actualizar la talla"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{talla_id}", Service: s,
			Path: "/producto-service/talla/{talla_id}", Auth: true, Permissions: []string{"eliminar_talla"},
			Action: "eliminar la talla"},
	}
}

// productoColorRoutes carries product images, so create and update
// relay a multipart form instead of JSON.
func productoColorRoutes(s Service) []Route {
	const prefix = "producto-color"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/producto-color", Auth: true, Permissions: []string{"crear_producto_color"},
			Body: BodyMultipart, Action: "crear el color de producto"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/producto-color", Auth: true, Permissions: []string{"ver_producto_color"},
			Action: "obtener los colores de producto"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto-color/{id}", Auth: true, Permissions: []string{"ver_producto_color"},
			Action: "obtener el color de producto"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto-color/{id}", Auth: true, Permissions: []string{"actualizar_producto_color"},
			Body: BodyMultipart, Action: "actualizar el color de producto"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto-color/{id}", Auth: true, Permissions: []string{"eliminar_producto_color"},
			Action: "eliminar el color de producto"},
	}
}

func productoTallaRoutes(s Service) []Route {
	const prefix = "producto-talla"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/producto-talla", Auth: true, Permissions: []string{"crear_producto_talla"},
			Body: BodyJSON, Action: "crear la talla de producto"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/producto-talla", Auth: true, Permissions: []string{"ver_producto_talla"},
			Action: "obtener las tallas de producto"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto-talla/{id}", Auth: true, Permissions: []string{"ver_producto_talla"},
			Action: "obtener la talla de producto"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto-talla/{id}", Auth: true, Permissions: []string{"actualizar_producto_talla"},
			Body: BodyJSON, Action: "actualizar la talla de producto"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/producto-service/producto-talla/{id}", Auth: true, Permissions: []string{"eliminar_producto_talla"},
			Action: "eliminar la talla de producto"},
	}
}

func deseoRoutes(s Service) []Route {
	const prefix = "deseo"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/usuarios/{usuario_id}/deseos", Service: s,
			Path: "/producto-service/deseo/usuarios/{usuario_id}/deseos", Auth: true,
			Permissions: []string{"crear_deseo"}, Body: BodyJSON, Action: "crear el deseo"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/usuarios/{usuario_id}/deseos", Service: s,
			Path: "/producto-service/deseo/usuarios/{usuario_id}/deseos", Auth: true,
			Permissions: []string{"obtener_deseos"}, Action: "obtener los deseos"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/deseos/{deseo_id}", Service: s,
			Path: "/producto-service/deseo/deseos/{deseo_id}", Auth: true,
			Permissions: []string{"obtener_deseo"}, Action: "obtener el deseo"},
		{Method: http.MethodPatch, Prefix: prefix, Pattern: "/deseos/{deseo_id}/consumir", Service: s,
			Path: "/producto-service/deseo/deseos/{deseo_id}/consumir", Auth: true,
			Permissions: []string{"consumir_deseo"}, Body: BodyJSON, Action: "consumir el deseo"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/deseos/{deseo_id}", Service: s,
			Path: "/producto-service/deseo/deseos/{deseo_id}", Auth: true,
			Permissions: []string{"eliminar_deseo"}, Action: "eliminar el deseo"},
	}
}

func promocionRoutes(s Service) []Route {
	const prefix = "promocion"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/promocion", Auth: true, Permissions: []string{"crear_promocion"},
			Body: BodyJSON, Action: "crear la promoción"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/producto-service/promocion", Auth: true, Permissions: []string{"obtener_promociones"},
			Action: "obtener las promociones"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{promocion_id}", Service: s,
			Path: "/producto-service/promocion/{promocion_id}", Auth: true, Permissions: []string{"obtener_promocion"},
			Action: "obtener la promoción"},
		{Method: http.MethodPatch, Prefix: prefix, Pattern: "/{promocion_id}", Service: s,
			Path: "/producto-service/promocion/{promocion_id}", Auth: true, Permissions: []string{"actualizar_promocion"},
			Body: BodyJSON, Action: "actualizar la promoción"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{promocion_id}", Service: s,
			Path: "/producto-service/promocion/{promocion_id}", Auth: true, Permissions: []string{"eliminar_promocion"},
			Action: "eliminar la promoción"},
	}
}

func invocarRoutes(s Service) []Route {
	const prefix = "invocar"
	return []Route{
		{Method: http.MethodPatch, Prefix: prefix, Pattern: "/{usuarioId}", Service: s,
			Path: "/producto-service/invocar/{usuarioId}", Auth: true,
			Permissions: []string{"modificar_estado_invocacion"},
			Body:        BodyJSON, Action: "modificar el estado de invocación"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{usuario_id}", Service: s,
			Path: "/producto-service/invocar/{usuario_id}", Auth: true,
			Permissions: []string{"ver_estado_invocacion"},
			Action:      "obtener el estado de invocación"},
	}
}

func cartRoutes(s Service) []Route {
	const prefix = "cart"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/cart-wishlist-service/cart", Auth: true, Permissions: []string{"agregar_carrito"},
			Body: BodyJSON, Action: "agregar el producto al carrito"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{user_id}", Service: s,
			Path: "/cart-wishlist-service/cart/{user_id}", Auth: true, Permissions: []string{"ver_carrito"},
			Action: "obtener el carrito"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{user_id}/{product_id}", Service: s,
			Path: "/cart-wishlist-service/cart/{user_id}/{product_id}", Auth: true,
			Permissions: []string{"editar_carrito"}, Body: BodyJSON, Action: "actualizar el carrito"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{user_id}/{product_id}", Service: s,
			Path: "/cart-wishlist-service/cart/{user_id}/{product_id}", Auth: true,
			Permissions: []string{"eliminar_item_carrito"}, Action: "eliminar el producto del carrito"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/clear/{user_id}", Service: s,
			Path: "/cart-wishlist-service/cart/clear/{user_id}", Auth: true,
			Permissions: []string{"vaciar_carrito"}, Action: "vaciar el carrito"},
	}
}

func wishlistRoutes(s Service) []Route {
	const prefix = "wishlist"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/cart-wishlist-service/wishlist", Auth: true, Permissions: []string{"agregar_wishlist"},
			Body: BodyJSON, Action: "agregar el producto a la wishlist"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{user_id}", Service: s,
			Path: "/cart-wishlist-service/wishlist/{user_id}", Auth: true, Permissions: []string{"ver_wishlist"},
			Action: "obtener la wishlist"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{user_id}/{product_id}", Service: s,
			Path: "/cart-wishlist-service/wishlist/{user_id}/{product_id}", Auth: true,
			Permissions: []string{"eliminar_item_wishlist"}, Action: "eliminar el producto de la wishlist"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/clear/{user_id}", Service: s,
			Path: "/cart-wishlist-service/wishlist/clear/{user_id}", Auth: true,
			Permissions: []string{"vaciar_wishlist"}, Action: "vaciar la wishlist"},
	}
}

// Shipping routes require a session but name no permissions: any
// authenticated user may operate on shipments.
func envioRoutes(s Service) []Route {
	const prefix = "envio"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/envio", Auth: true, Body: BodyJSON, Action: "crear el envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/envio", Auth: true, Action: "obtener los envíos"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{numero_guia}", Service: s,
			Path: "/envio-service/envio/{numero_guia}", Auth: true, Action: "obtener el envío"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{numero_guia}", Service: s,
			Path: "/envio-service/envio/{numero_guia}", Auth: true, Body: BodyJSON, Action: "actualizar el envío"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id_envio}", Service: s,
			Path: "/envio-service/envio/{id_envio}", Auth: true, Action: "eliminar el envío"},
	}
}

func envioProductoRoutes(s Service) []Route {
	const prefix = "envio_producto"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/envio_producto", Auth: true, Body: BodyJSON,
			Action: "agregar el producto al envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/envio_producto", Auth: true,
			Action: "obtener los productos de envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/envio/{id_envio}", Service: s,
			Path: "/envio-service/envio_producto/envio/{id_envio}", Auth: true,
			Action: "obtener los productos del envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/envio-service/envio_producto/{id}", Auth: true,
			Action: "obtener el producto de envío"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/envio-service/envio_producto/{id}", Auth: true, Body: BodyJSON,
			Action: "actualizar el producto de envío"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/envio-service/envio_producto/{id}", Auth: true,
			Action: "eliminar el producto de envío"},
	}
}

func estadoEnvioRoutes(s Service) []Route {
	const prefix = "estado_envio"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/estado_envio", Auth: true, Body: BodyJSON,
			Action: "crear el estado de envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/estado_envio", Auth: true,
			Action: "obtener los estados de envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/envio/{id_envio}", Service: s,
			Path: "/envio-service/estado_envio/envio/{id_envio}", Auth: true,
			Action: "obtener los estados del envío"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id_estado}", Service: s,
			Path: "/envio-service/estado_envio/{id_estado}", Auth: true, Body: BodyJSON,
			Action: "actualizar el estado de envío"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id_estado}", Service: s,
			Path: "/envio-service/estado_envio/{id_estado}", Auth: true,
			Action: "eliminar el estado de envío"},
	}
}

func tarifaEnvioRoutes(s Service) []Route {
	const prefix = "tarifa_envio"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/tarifa_envio", Auth: true, Body: BodyJSON,
			Action: "crear la tarifa de envío"},
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/calcular", Service: s,
			Path: "/envio-service/tarifa_envio/calcular", Auth: true, Body: BodyJSON,
			Action: "calcular la tarifa de envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/", Service: s,
			Path: "/envio-service/tarifa_envio", Auth: true,
			Action: "obtener las tarifas de envío"},
		{Method: http.MethodGet, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/envio-service/tarifa_envio/{id}", Auth: true,
			Action: "obtener la tarifa de envío"},
		{Method: http.MethodPut, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/envio-service/tarifa_envio/{id}", Auth: true, Body: BodyJSON,
			Action: "actualizar la tarifa de envío"},
		{Method: http.MethodDelete, Prefix: prefix, Pattern: "/{id}", Service: s,
			Path: "/envio-service/tarifa_envio/{id}", Auth: true,
			Action: "eliminar la tarifa de envío"},
	}
}

func stripeRoutes(s Service) []Route {
	const prefix = "stripe"
	return []Route{
		{Method: http.MethodPost, Prefix: prefix, Pattern: "/checkout", Service: s,
			Path: "/api/payment/create-checkout-session", Auth: true,
			Permissions: []string{"pago_stripe"},
			Body:        BodyJSON, Special: SpecialCheckout, Action: "iniciar el pago"},
	}
}
